package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/glance/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := core.NewStyledCell('X', core.DefaultStyle().WithForeground(core.ColorWhite))
	b.SetCell(10, 5, cell)

	got := b.GetCell(10, 5)
	if !got.Equals(cell) {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)

	empty := b.GetCell(-1, 0)
	if !empty.Equals(core.EmptyCell()) {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendFill(t *testing.T) {
	b := NewNullBackend(20, 10)
	b.Init()

	cell := core.NewStyledCell('.', core.DefaultStyle())
	b.Fill(core.RectFromSize(2, 3, 4, 5), cell)

	if !b.GetCell(3, 2).Equals(cell) || !b.GetCell(7, 5).Equals(cell) {
		t.Error("cells inside rect should be filled")
	}
	if b.GetCell(8, 5).Equals(cell) || b.GetCell(3, 6).Equals(cell) {
		t.Error("cells outside rect should not be filled")
	}

	// Clipped to the screen
	b.Fill(core.RectFromSize(-5, -5, 100, 100), cell)
	if b.Row(9) != "...................." {
		t.Errorf("expected full row of dots, got %q", b.Row(9))
	}

	b.Clear()
	if b.Row(0) != "                    " {
		t.Errorf("expected blank row after clear, got %q", b.Row(0))
	}
}

func TestNullBackendRowSkipsContinuation(t *testing.T) {
	b := NewNullBackend(4, 1)
	b.Init()

	for x, c := range core.StyledLine("日a", core.DefaultStyle()).Cells() {
		b.SetCell(x, 0, c)
	}
	if got := b.Row(0); got != "日a " {
		t.Errorf("expected %q, got %q", "日a ", got)
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(10, 10)
	b.Init()

	b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'j'})
	b.PostEvent(InterruptEvent("reload"))

	if ev := b.PollEvent(); ev.KeyName() != "j" {
		t.Errorf("expected key j, got %q", ev.KeyName())
	}
	ev := b.PollEvent()
	if ev.Type != EventInterrupt || ev.Data != "reload" {
		t.Errorf("expected reload interrupt, got %+v", ev)
	}

	b.Resize(30, 5)
	if w, h := b.Size(); w != 30 || h != 5 {
		t.Errorf("expected 30x5 after resize, got %dx%d", w, h)
	}
	if ev := b.PollEvent(); ev.Type != EventResize || ev.Width != 30 || ev.Height != 5 {
		t.Errorf("expected resize event, got %+v", ev)
	}
}

func TestNullBackendCounters(t *testing.T) {
	b := NewNullBackend(1, 1)
	b.Init()

	b.Beep()
	b.Show()
	b.Show()
	b.HideCursor()

	if b.Beeps() != 1 || b.Shows() != 2 || b.CursorVisible() {
		t.Errorf("unexpected counters: beeps=%d shows=%d cursor=%v", b.Beeps(), b.Shows(), b.CursorVisible())
	}
}

func TestEventKeyName(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Type: EventKey, Key: KeyRune, Rune: 'G'}, "G"},
		{Event{Type: EventKey, Key: KeyRune, Rune: '$'}, "$"},
		{Event{Type: EventKey, Key: KeyPageDown}, "PgDn"},
		{Event{Type: EventKey, Key: KeyCtrlF}, "Ctrl-F"},
		{Event{Type: EventKey, Key: KeyNone}, ""},
		{Event{Type: EventResize}, ""},
	}
	for _, tt := range tests {
		if got := tt.ev.KeyName(); got != tt.want {
			t.Errorf("KeyName(%+v) = %q, want %q", tt.ev, got, tt.want)
		}
	}
}

func TestCanonicalKeyName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"g", "g", false},
		{"G", "G", false},
		{"up", "Up", false},
		{"PAGEDOWN", "PgDn", false},
		{"pgup", "PgUp", false},
		{"ctrl-f", "Ctrl-F", false},
		{"C-b", "Ctrl-B", false},
		{"Ctrl+c", "Ctrl-C", false},
		{"escape", "Esc", false},
		{"space", " ", false},
		{"hyper-x", "", true},
	}
	for _, tt := range tests {
		got, err := CanonicalKeyName(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("CanonicalKeyName(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("CanonicalKeyName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConvertStyleRoundTrip(t *testing.T) {
	s := core.NewStyle(core.ColorFromRGB(10, 20, 30), core.ColorFromIndex(4)).Bold().Reverse()

	back := convertTcellStyle(convertStyle(s))
	if !back.Foreground.Equals(s.Foreground) {
		t.Errorf("foreground: expected %s, got %s", s.Foreground, back.Foreground)
	}
	if !back.Background.Equals(s.Background) {
		t.Errorf("background: expected %s, got %s", s.Background, back.Background)
	}
	if !back.Attributes.Has(core.AttrBold) || !back.Attributes.Has(core.AttrReverse) {
		t.Errorf("expected bold and reverse, got %v", back.Attributes)
	}

	if !convertTcellColor(convertColor(core.ColorDefault)).IsDefault() {
		t.Error("default color should survive conversion")
	}
}

func TestConvertEvent(t *testing.T) {
	ev, ok := convertEvent(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone))
	if !ok || ev.Key != KeyPageDown {
		t.Errorf("expected PgDn key event, got %+v (ok=%v)", ev, ok)
	}

	if _, ok := convertEvent(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)); ok {
		t.Error("unmapped keys should be dropped")
	}

	ev, ok = convertEvent(tcell.NewEventMouse(3, 4, tcell.WheelDown, tcell.ModNone))
	if !ok || ev.MouseButton != MouseWheelDown || ev.MouseX != 3 || ev.MouseY != 4 {
		t.Errorf("expected wheel down at (3,4), got %+v", ev)
	}

	if _, ok := convertEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone)); ok {
		t.Error("bare mouse motion should be dropped")
	}

	ev, ok = convertEvent(tcell.NewEventResize(100, 40))
	if !ok || ev.Type != EventResize || ev.Width != 100 || ev.Height != 40 {
		t.Errorf("expected 100x40 resize, got %+v", ev)
	}

	ev, ok = convertEvent(tcell.NewEventInterrupt(7))
	if !ok || ev.Type != EventInterrupt || ev.Data != 7 {
		t.Errorf("expected interrupt carrying 7, got %+v", ev)
	}
}

func TestTerminalSimulation(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Shutdown()
	screen.SetSize(20, 5)

	if w, h := term.Size(); w != 20 || h != 5 {
		t.Fatalf("expected 20x5, got %dx%d", w, h)
	}

	style := core.NewStyle(core.ColorWhite, core.ColorBlack).Reverse()
	term.SetCell(2, 1, core.NewStyledCell('Z', style))
	term.Show()

	got := term.GetCell(2, 1)
	if got.Rune != 'Z' {
		t.Errorf("expected Z, got %q", got.Rune)
	}
	if !got.Style.Attributes.Has(core.AttrReverse) {
		t.Error("expected reverse attribute to be kept")
	}

	term.PostEvent(InterruptEvent("ping"))
	for {
		ev := term.PollEvent()
		if ev.Type == EventInterrupt {
			if ev.Data != "ping" {
				t.Errorf("expected ping, got %v", ev.Data)
			}
			break
		}
	}
}
