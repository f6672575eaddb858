// Package main is the entry point for the glance text viewer.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/glance/internal/app"
	"github.com/dshills/glance/internal/config"
	"github.com/dshills/glance/internal/engine/buffer"
	"github.com/dshills/glance/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// debugLogName is the log file used by --debug when --log-file is not given.
const debugLogName = "glance-debug.log"

// flags holds the root command's flags.
type flags struct {
	configPath string
	initPath   string
	theme      string
	logLevel   string
	logFile    string
	debug      bool
	tabWidth   int
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   "glance [flags] [FILE]",
		Short: "Read-only terminal text viewer",
		Long: `glance shows a text file in the terminal with a movable cursor,
line numbers and a status line. With no FILE it reads standard input.

Configuration is read from $XDG_CONFIG_HOME/glance/config.toml (or .yaml),
GLANCE_* environment variables and an optional init.lua script.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runViewer(cmd, args, f)
		},
	}

	pf := root.Flags()
	pf.StringVarP(&f.configPath, "config", "c", "", "path to the configuration file")
	pf.StringVar(&f.initPath, "init", "", "path to the Lua init script")
	pf.StringVarP(&f.theme, "theme", "t", "", "color theme (see 'glance themes list')")
	pf.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&f.logFile, "log-file", "", "write logs to this file")
	pf.BoolVarP(&f.debug, "debug", "d", false, "debug logging to "+debugLogName+" in the temp directory")
	pf.IntVar(&f.tabWidth, "tab-width", 0, "spaces per tab stop")

	root.AddCommand(newVersionCommand(), newThemesCommand())
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "glance %s\n", version)
			fmt.Fprintf(out, "Commit: %s\n", commit)
			fmt.Fprintf(out, "Built: %s\n", date)
		},
	}
}

// loadOptions turns the flags into config load options.
func (f flags) loadOptions() []config.Option {
	var opts []config.Option
	if f.configPath != "" {
		opts = append(opts, config.WithPath(f.configPath))
	}
	if f.initPath != "" {
		opts = append(opts, config.WithInitScript(f.initPath))
	}
	return opts
}

// apply overrides cfg with the flags that were set.
func (f flags) apply(cfg *config.Config) {
	if f.theme != "" {
		cfg.Theme.Name = f.theme
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
	if f.debug {
		cfg.Log.Level = "debug"
		if cfg.Log.File == "" {
			cfg.Log.File = filepath.Join(os.TempDir(), debugLogName)
		}
	}
	if f.tabWidth > 0 {
		cfg.TabWidth = f.tabWidth
	}
}

// load reads the configuration and applies the flags on top.
func (f flags) load(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx, f.loadOptions()...)
	if err != nil {
		return nil, err
	}
	f.apply(cfg)
	return cfg, nil
}

func runViewer(cmd *cobra.Command, args []string, f flags) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("standard output is not a terminal")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := f.load(ctx)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	buf, err := readBuffer(path, cfg.TabWidth)
	if err != nil {
		return err
	}

	terminal, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("creating terminal: %w", err)
	}

	viewer, err := app.New(app.Options{
		Config:  cfg,
		Buffer:  buf,
		Path:    path,
		Backend: terminal,
		Logger:  logger,
		Reload:  f.load,
	})
	if err != nil {
		return err
	}
	defer viewer.Close()

	return viewer.Run(ctx)
}

// readBuffer loads path, or standard input when path is empty.
func readBuffer(path string, tabWidth int) (*buffer.Buffer, error) {
	if path == "" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("no file given and standard input is a terminal")
		}
		return buffer.FromReader(os.Stdin, buffer.WithTabWidth(tabWidth))
	}

	buf, err := buffer.Load(path, buffer.WithTabWidth(tabWidth))
	if err != nil {
		return nil, app.NewOperationError("open", path, err)
	}
	return buf, nil
}

// newLogger builds the application logger from cfg. Without a log file
// nothing is logged, since the terminal belongs to the viewer.
func newLogger(cfg *config.Config) (*app.Logger, func(), error) {
	level, err := app.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Log.File == "" {
		return app.NewNullLogger(), func() {}, nil
	}

	file, err := app.OpenLogFile(cfg.Log.File)
	if err != nil {
		return nil, nil, err
	}
	logger := app.NewLogger(app.LoggerConfig{
		Level:  level,
		Output: file,
		Prefix: "glance",
	})
	return logger, func() { _ = file.Close() }, nil
}

// writeOutput writes data to path, or to w when path is empty or "-".
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := w.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
