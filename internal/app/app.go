// Package app wires the viewer together: it opens a document, owns the
// terminal backend, turns input into navigation commands and redraws the
// screen after each event.
//
// All view state is touched from the goroutine running Run. Other
// goroutines (the config watcher, context cancellation) talk to the loop
// by posting interrupt events to the backend.
package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/dshills/glance/internal/config"
	"github.com/dshills/glance/internal/config/watcher"
	"github.com/dshills/glance/internal/engine/buffer"
	"github.com/dshills/glance/internal/renderer"
	"github.com/dshills/glance/internal/renderer/backend"
	"github.com/dshills/glance/internal/renderer/gutter"
	"github.com/dshills/glance/internal/renderer/statusline"
)

// ReloadFunc loads a fresh configuration when a watched file changes.
type ReloadFunc func(ctx context.Context) (*config.Config, error)

// Options configures the application.
type Options struct {
	// Config is the resolved configuration. Defaults are used when nil.
	Config *config.Config

	// Buffer is the text to view.
	Buffer *buffer.Buffer

	// Path is the file Buffer was read from, if any.
	Path string

	// Backend is the terminal to draw on.
	Backend backend.Backend

	// Logger receives application logs. Logging is off when nil.
	Logger *Logger

	// Reload is called when a watched config file changes.
	// Live reload is disabled when nil.
	Reload ReloadFunc
}

// Application is the viewer: one document shown in one view.
type Application struct {
	mu sync.Mutex

	config  *config.Config
	keymap  *Keymap
	doc     *Document
	view    *renderer.View
	backend backend.Backend
	reload  ReloadFunc
	watcher *watcher.Watcher
	log     *Logger

	running atomic.Bool
	ctx     context.Context
}

// New creates an application viewing opts.Buffer.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = NewNullLogger()
	}
	buf := opts.Buffer
	if buf == nil {
		buf = buffer.New()
	}

	th, err := cfg.ResolveTheme()
	if err != nil {
		return nil, NewComponentError("config", "resolve theme", err)
	}
	km, err := NewKeymap(cfg.Keys)
	if err != nil {
		return nil, NewComponentError("config", "keys", err)
	}

	doc := NewDocument(buf, opts.Path, th)
	view := renderer.NewView(gutter.New(cfg.Gutter))
	view.SetFilename(doc.Name)

	app := &Application{
		config:  cfg,
		keymap:  km,
		doc:     doc,
		view:    view,
		backend: opts.Backend,
		reload:  opts.Reload,
		log:     log.WithField("view", doc.ID.String()),
		ctx:     context.Background(),
	}
	app.logScriptMessages(cfg)
	app.log.Info("opened %s (%d lines, theme %s)", doc.Name, buf.LineCount(), th.Name)
	return app, nil
}

// Run takes over the backend and processes events until a quit command,
// a fatal error, or cancellation of ctx.
func (app *Application) Run(ctx context.Context) error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer app.backend.Shutdown()
	app.backend.HideCursor()

	app.ctx = ctx
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			app.backend.PostEvent(backend.InterruptEvent(quitRequest{}))
		case <-stop:
		}
	}()

	if app.config.Watch && app.reload != nil {
		if err := app.startWatcher(); err != nil {
			app.log.WithComponent("watcher").Warn("live reload disabled: %v", err)
		}
		defer app.stopWatcher()
	}

	return app.eventLoop()
}

// Shutdown asks a running application to exit.
func (app *Application) Shutdown() {
	if app.running.Load() {
		app.backend.PostEvent(backend.InterruptEvent(quitRequest{}))
	}
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Close releases the document. The application cannot render afterwards.
func (app *Application) Close() {
	app.doc.Close()
}

// Config returns the configuration in effect.
func (app *Application) Config() *config.Config {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.config
}

// Document returns the open document.
func (app *Application) Document() *Document {
	return app.doc
}

// Keymap returns the key bindings in effect.
func (app *Application) Keymap() *Keymap {
	return app.keymap
}

// View returns the view.
func (app *Application) View() *renderer.View {
	return app.view
}

// Execute runs the named command.
func (app *Application) Execute(name string) error {
	cmd, ok := LookupCommand(name)
	if !ok {
		return NewOperationError(name, "", ErrUnknownCommand)
	}
	app.log.Debug("command %s", name)
	if err := cmd(app); err != nil {
		if errors.Is(err, ErrQuit) {
			return err
		}
		return NewOperationError(name, app.doc.Path, err)
	}
	return nil
}

// startWatcher watches the config file and init script and turns changes
// into reload requests on the event loop.
func (app *Application) startWatcher() error {
	w, err := watcher.New(watcher.WithErrorHandler(func(err error) {
		app.log.WithComponent("watcher").Warn("%v", err)
	}))
	if err != nil {
		return err
	}
	watched := 0
	for _, path := range app.config.WatchPaths() {
		if err := w.Watch(path); err != nil {
			app.log.WithComponent("watcher").Warn("%v", err)
			continue
		}
		watched++
	}
	if watched == 0 {
		_ = w.Stop()
		return errors.New("no config files to watch")
	}
	w.OnChange(func(ev watcher.Event) {
		app.backend.PostEvent(backend.InterruptEvent(reloadRequest{path: ev.Path}))
	})
	w.Start()
	app.watcher = w
	return nil
}

func (app *Application) stopWatcher() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Stop(); err != nil {
		app.log.WithComponent("watcher").Warn("stop: %v", err)
	}
	app.watcher = nil
}

// applyConfig swaps in cfg: theme, line numbers, key bindings and the
// watched paths. Nothing changes if the theme or bindings are invalid.
func (app *Application) applyConfig(cfg *config.Config) error {
	th, err := cfg.ResolveTheme()
	if err != nil {
		return NewComponentError("config", "resolve theme", err)
	}
	km, err := NewKeymap(cfg.Keys)
	if err != nil {
		return NewComponentError("config", "keys", err)
	}

	app.doc.SetTheme(th)
	app.view.Window().Gutter().SetMode(cfg.Gutter)
	app.keymap = km

	app.mu.Lock()
	old := app.config
	app.config = cfg
	app.mu.Unlock()

	if app.watcher != nil {
		app.rewatch(old.WatchPaths(), cfg.WatchPaths())
	}
	app.logScriptMessages(cfg)
	return nil
}

// rewatch moves the watcher from the old paths to the new ones.
func (app *Application) rewatch(oldPaths, newPaths []string) {
	keep := make(map[string]bool, len(newPaths))
	for _, p := range newPaths {
		keep[p] = true
	}
	log := app.log.WithComponent("watcher")
	for _, p := range oldPaths {
		if !keep[p] {
			if err := app.watcher.Unwatch(p); err != nil {
				log.Warn("unwatch %s: %v", p, err)
			}
		}
	}
	for _, p := range newPaths {
		if err := app.watcher.Watch(p); err != nil {
			log.Warn("watch %s: %v", p, err)
		}
	}
}

func (app *Application) logScriptMessages(cfg *config.Config) {
	log := app.log.WithComponent("script")
	for _, msg := range cfg.Messages {
		log.Info("%s", msg)
	}
}

// setMessage shows msg in the status line.
func (app *Application) setMessage(msg string, typ statusline.MessageType) {
	app.view.Status().SetMessage(msg, typ)
}
