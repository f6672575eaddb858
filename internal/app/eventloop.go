package app

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/dshills/glance/internal/renderer/backend"
	"github.com/dshills/glance/internal/renderer/statusline"
	"github.com/dshills/glance/internal/renderer/viewport"
)

// WheelLines is how many lines one mouse wheel notch scrolls.
const WheelLines = 3

// quitRequest is posted to stop the event loop.
type quitRequest struct{}

// reloadRequest is posted by the config watcher.
type reloadRequest struct {
	path string
}

// eventLoop draws the screen, then handles one event at a time and
// redraws after each.
func (app *Application) eventLoop() error {
	if err := app.render(); err != nil {
		return err
	}

	for {
		ev := app.backend.PollEvent()

		err := app.handleEventSafe(ev)
		switch {
		case errors.Is(err, ErrQuit):
			app.log.Info("quit")
			return nil
		case errors.Is(err, viewport.ErrViewClosed):
			return err
		case err != nil:
			app.log.Warn("%v", err)
			app.setMessage(err.Error(), statusline.MessageError)
		}

		if err := app.render(); err != nil {
			return err
		}
	}
}

func (app *Application) render() error {
	if err := app.view.Render(app.backend, app.doc.State); err != nil {
		return NewOperationError("render", app.doc.Path, err)
	}
	return nil
}

// handleEventSafe handles ev, turning a panic into an error so one bad
// event does not take down the terminal in a raw state.
func (app *Application) handleEventSafe(ev backend.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			perr := &RecoveredPanicError{Value: r, Stack: string(debug.Stack())}
			app.log.Error("%v", perr)
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	return app.handleEvent(ev)
}

// handleEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventMouse:
		return app.handleMouse(ev)
	case backend.EventResize:
		app.log.Debug("resize %dx%d", ev.Width, ev.Height)
		app.backend.Clear()
		return nil
	case backend.EventInterrupt:
		return app.handleInterrupt(ev.Data)
	default:
		return nil
	}
}

// handleKey runs the command bound to the key. Unbound keys are ignored.
func (app *Application) handleKey(ev backend.Event) error {
	name := ev.KeyName()
	cmd, ok := app.keymap.Lookup(name)
	if !ok {
		return nil
	}
	if cmd != CmdClearMessage {
		app.view.Status().ClearMessage()
	}
	return app.Execute(cmd)
}

// handleMouse scrolls on the wheel and moves the cursor to a clicked cell.
func (app *Application) handleMouse(ev backend.Event) error {
	switch ev.MouseButton {
	case backend.MouseWheelUp:
		return app.repeat(CmdMoveUp, WheelLines)
	case backend.MouseWheelDown:
		return app.repeat(CmdMoveDown, WheelLines)
	case backend.MouseLeft:
		pos, ok := app.view.PositionAt(app.backend, app.doc.State, ev.MouseX, ev.MouseY)
		if !ok {
			return nil
		}
		if err := app.doc.State.Jump(pos); err != nil {
			return NewOperationError("click", app.doc.Path, err)
		}
		return nil
	default:
		return nil
	}
}

func (app *Application) repeat(name string, n int) error {
	for i := 0; i < n; i++ {
		if err := app.Execute(name); err != nil {
			return err
		}
	}
	return nil
}

func (app *Application) handleInterrupt(data any) error {
	switch req := data.(type) {
	case quitRequest:
		return ErrQuit
	case reloadRequest:
		return app.reloadConfig(req.path)
	default:
		return nil
	}
}

// reloadConfig loads the configuration again and applies it. A failed
// reload keeps the current configuration and reports the error.
func (app *Application) reloadConfig(path string) error {
	if app.reload == nil {
		return nil
	}
	log := app.log.WithComponent("config").WithField("path", path)

	cfg, err := app.reload(app.ctx)
	if err == nil {
		err = app.applyConfig(cfg)
	}
	if err != nil {
		log.Error("reload failed: %v", err)
		return NewOperationError("reload", path, err)
	}

	log.Info("reloaded")
	app.setMessage("configuration reloaded", statusline.MessageInfo)
	return nil
}
