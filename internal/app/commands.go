package app

import (
	"sort"

	"github.com/dshills/glance/internal/renderer/viewport"
)

// Command is an action bound to a key.
type Command func(app *Application) error

// Command names.
const (
	CmdMoveUp       = "move_up"
	CmdMoveDown     = "move_down"
	CmdMoveLeft     = "move_left"
	CmdMoveRight    = "move_right"
	CmdLineStart    = "line_start"
	CmdLineEnd      = "line_end"
	CmdFirstLine    = "first_line"
	CmdLastLine     = "last_line"
	CmdPageUp       = "page_up"
	CmdPageDown     = "page_down"
	CmdRedraw       = "redraw"
	CmdClearMessage = "clear_message"
	CmdQuit         = "quit"
)

var commands = map[string]Command{
	CmdMoveUp:    move(viewport.Up),
	CmdMoveDown:  move(viewport.Down),
	CmdMoveLeft:  move(viewport.Left),
	CmdMoveRight: move(viewport.Right),
	CmdLineStart: func(app *Application) error {
		return app.doc.State.JumpToStartOfLine()
	},
	CmdLineEnd: func(app *Application) error {
		return app.doc.State.JumpToEndOfLine()
	},
	CmdFirstLine: func(app *Application) error {
		return app.doc.State.JumpToFirstLine()
	},
	CmdLastLine: func(app *Application) error {
		return app.doc.State.JumpToLastLine()
	},
	CmdPageUp: func(app *Application) error {
		return app.doc.State.PageUp()
	},
	CmdPageDown: func(app *Application) error {
		return app.doc.State.PageDown()
	},
	CmdRedraw: func(app *Application) error {
		app.backend.Clear()
		return nil
	},
	CmdClearMessage: func(app *Application) error {
		app.view.Status().ClearMessage()
		return nil
	},
	CmdQuit: func(*Application) error {
		return ErrQuit
	},
}

func move(dir viewport.Direction) Command {
	return func(app *Application) error {
		return app.doc.State.Move(dir)
	}
}

// LookupCommand returns the command registered under name.
func LookupCommand(name string) (Command, bool) {
	cmd, ok := commands[name]
	return cmd, ok
}

// CommandNames returns the names of all commands, sorted.
func CommandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
