// Package renderer turns a view's navigation state into styled screen rows.
//
// The renderer is responsible for:
//   - Slicing the visible lines out of the buffer and padding them to width
//   - Highlighting the cursor's line and character
//   - Composing the line number gutter, the hint column and the text area
//   - Filling rows below the end of the buffer with the background color
//   - Drawing the status line
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│           View (screen layout)          │
//	├─────────────────────────────────────────┤
//	│  TextWindow  │  Gutter  │  StatusLine   │
//	├─────────────────────────────────────────┤
//	│  viewport.State (cursor + scrolling)    │
//	├─────────────────────────────────────────┤
//	│  Backend: Terminal (tcell) │ Null       │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	view := renderer.NewView(gutter.New(gutter.Relative))
//	view.SetFilename(buf.Name())
//	err := view.Render(term, state)
package renderer
