package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dshills/glance/internal/config/loader"
	"github.com/dshills/glance/internal/engine/buffer"
	"github.com/dshills/glance/internal/renderer/backend"
	"github.com/dshills/glance/internal/renderer/gutter"
	"github.com/dshills/glance/internal/renderer/theme"
)

// File names looked up in the configuration directory.
const (
	InitScriptName = "init.lua"
	appDirName     = "glance"
)

var configFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// Config is the resolved glance configuration.
type Config struct {
	Theme    ThemeConfig
	Gutter   gutter.Mode
	Keys     map[string]string // canonical key name -> command
	Log      LogConfig
	Watch    bool
	TabWidth int

	// Path is the config file consulted, empty when none was found.
	Path string
	// InitPath is the init script consulted, whether or not it exists.
	InitPath string
	// Messages holds lines printed by the init script.
	Messages []string
}

// ThemeConfig selects and adjusts the color theme.
type ThemeConfig struct {
	Name   string
	Import string            // VS Code color theme JSON
	Colors map[string]string // slot -> hex
}

// LogConfig controls the application log.
type LogConfig struct {
	Level string
	File  string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme: ThemeConfig{
			Name:   theme.DefaultName,
			Colors: make(map[string]string),
		},
		Gutter:   gutter.Relative,
		Keys:     make(map[string]string),
		Log:      LogConfig{Level: "info"},
		TabWidth: buffer.DefaultTabWidth,
	}
}

// defaultMap mirrors Default as the lowest-priority merge layer.
func defaultMap() map[string]any {
	return map[string]any{
		"theme": map[string]any{
			"name":   theme.DefaultName,
			"import": "",
			"colors": map[string]any{},
		},
		"gutter": map[string]any{
			"mode": gutter.Relative.String(),
		},
		"keys": map[string]any{},
		"log": map[string]any{
			"level": "info",
			"file":  "",
		},
		"watch":     false,
		"tab_width": int64(buffer.DefaultTabWidth),
	}
}

// Option configures Load.
type Option func(*options)

type options struct {
	path          string
	initPath      string
	envPrefix     string
	fs            loader.FileSystem
	scriptTimeout time.Duration
}

// WithPath loads the given config file instead of searching the default directory.
// The file must exist.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithInitScript runs the given Lua script instead of init.lua next to the
// config file. The file must exist.
func WithInitScript(path string) Option {
	return func(o *options) {
		o.initPath = path
	}
}

// WithEnvPrefix changes the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithFS reads files through fsys.
func WithFS(fsys loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithScriptTimeout bounds the init script run time.
func WithScriptTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.scriptTimeout = d
		}
	}
}

// Load builds the configuration from defaults, the config file, the
// environment and the init script, in increasing priority. Command-line
// flags are applied by the caller afterwards.
func Load(ctx context.Context, opts ...Option) (*Config, error) {
	o := options{
		envPrefix:     loader.DefaultEnvPrefix,
		fs:            loader.DefaultFS(),
		scriptTimeout: DefaultScriptTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	path := o.path
	if path == "" {
		path = findConfigFile(o.fs, DefaultDir())
	} else if !exists(o.fs, path) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	merged := defaultMap()
	if path != "" {
		l, err := loader.ForPath(o.fs, path)
		if err != nil {
			return nil, err
		}
		fileMap, err := l.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, fileMap)
	}

	envMap, err := loader.NewEnvLoader(o.envPrefix).Load()
	if err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	merged = loader.DeepMerge(merged, envMap)

	cfg, err := decode(merged)
	if err != nil {
		return nil, err
	}
	cfg.Path = path

	initPath := o.initPath
	if initPath == "" {
		dir := DefaultDir()
		if path != "" {
			dir = filepath.Dir(path)
		}
		initPath = filepath.Join(dir, InitScriptName)
	} else if !exists(o.fs, initPath) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, initPath)
	}
	cfg.InitPath = initPath

	if exists(o.fs, initPath) {
		src, err := o.fs.ReadFile(initPath)
		if err != nil {
			return nil, fmt.Errorf("reading init script: %w", err)
		}
		if err := RunScript(ctx, cfg, initPath, string(src), o.scriptTimeout); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// DefaultDir returns $XDG_CONFIG_HOME/glance, or ~/.config/glance.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appDirName)
}

func findConfigFile(fsys loader.FileSystem, dir string) string {
	for _, name := range configFileNames {
		p := filepath.Join(dir, name)
		if exists(fsys, p) {
			return p
		}
	}
	return ""
}

func exists(fsys loader.FileSystem, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// decode converts a merged configuration map into a Config.
// Every problem is reported; the errors are joined.
func decode(m map[string]any) (*Config, error) {
	cfg := Default()
	var errs []error

	if v, err := stringAt(m, "theme.name"); err != nil {
		errs = append(errs, err)
	} else if _, ok := theme.Lookup(v); !ok {
		errs = append(errs, &ValidationError{
			Path:    "theme.name",
			Message: "unknown theme, available: " + strings.Join(theme.Names(), ", "),
			Value:   v,
		})
	} else {
		cfg.Theme.Name = v
	}

	if v, err := stringAt(m, "theme.import"); err != nil {
		errs = append(errs, err)
	} else {
		cfg.Theme.Import = v
	}

	if raw, ok := loader.GetPath(m, "theme.colors"); ok {
		colors, isMap := raw.(map[string]any)
		if !isMap {
			errs = append(errs, &TypeError{Path: "theme.colors", Expected: "table", Actual: typeName(raw)})
		} else {
			flattenColors(cfg.Theme.Colors, "", colors, &errs)
		}
	}

	if v, err := stringAt(m, "gutter.mode"); err != nil {
		errs = append(errs, err)
	} else if mode, err := gutter.ParseMode(v); err != nil {
		errs = append(errs, &ValidationError{Path: "gutter.mode", Message: err.Error(), Value: v})
	} else {
		cfg.Gutter = mode
	}

	if raw, ok := loader.GetPath(m, "keys"); ok {
		keys, isMap := raw.(map[string]any)
		if !isMap {
			errs = append(errs, &TypeError{Path: "keys", Expected: "table", Actual: typeName(raw)})
		}
		names := make([]string, 0, len(keys))
		for k := range keys {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			path := "keys." + k
			cmd, isString := keys[k].(string)
			if !isString {
				errs = append(errs, &TypeError{Path: path, Expected: "string", Actual: typeName(keys[k])})
				continue
			}
			if err := cfg.Bind(k, cmd); err != nil {
				errs = append(errs, &ValidationError{Path: path, Message: err.Error(), Value: k})
			}
		}
	}

	if v, err := stringAt(m, "log.level"); err != nil {
		errs = append(errs, err)
	} else {
		cfg.Log.Level = v
	}
	if v, err := stringAt(m, "log.file"); err != nil {
		errs = append(errs, err)
	} else {
		cfg.Log.File = v
	}

	if v, err := boolAt(m, "watch"); err != nil {
		errs = append(errs, err)
	} else {
		cfg.Watch = v
	}

	if v, err := intAt(m, "tab_width"); err != nil {
		errs = append(errs, err)
	} else if v < 1 {
		errs = append(errs, &ValidationError{Path: "tab_width", Message: "must be at least 1", Value: v})
	} else {
		cfg.TabWidth = v
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// flattenColors turns nested tables into dotted slot names, so that
// `text.foreground = "#fff"` in TOML and a quoted "text.foreground" key in
// YAML mean the same slot.
func flattenColors(dst map[string]string, prefix string, src map[string]any, errs *[]error) {
	for k, v := range src {
		slot := k
		if prefix != "" {
			slot = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			dst[slot] = val
		case map[string]any:
			flattenColors(dst, slot, val, errs)
		default:
			*errs = append(*errs, &TypeError{Path: "theme.colors." + slot, Expected: "string", Actual: typeName(v)})
		}
	}
}

func stringAt(m map[string]any, path string) (string, error) {
	v, _ := loader.GetPath(m, path)
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

func boolAt(m map[string]any, path string) (bool, error) {
	v, _ := loader.GetPath(m, path)
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

func intAt(m map[string]any, path string) (int, error) {
	v, _ := loader.GetPath(m, path)
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if val == float64(int(val)) {
			return int(val), nil
		}
	}
	return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
}

// Bind maps key to command. The key is stored under its canonical name;
// an empty command removes the binding.
func (c *Config) Bind(key, command string) error {
	name, err := backend.CanonicalKeyName(key)
	if err != nil {
		return err
	}
	if command == "" {
		delete(c.Keys, name)
		return nil
	}
	c.Keys[name] = command
	return nil
}

// ResolveTheme builds the configured theme: the named built-in, then the
// imported VS Code theme, then the per-slot overrides.
func (c *Config) ResolveTheme() (*theme.Theme, error) {
	t, ok := theme.Lookup(c.Theme.Name)
	if !ok {
		return nil, &ValidationError{Path: "theme.name", Message: "unknown theme", Value: c.Theme.Name}
	}
	if c.Theme.Import != "" {
		imported, err := theme.ImportVSCode(expandHome(c.Theme.Import), t)
		if err != nil {
			return nil, fmt.Errorf("theme.import: %w", err)
		}
		t = imported
	}
	if err := t.ApplyOverrides(c.Theme.Colors); err != nil {
		return nil, fmt.Errorf("theme.colors: %w", err)
	}
	return t, nil
}

// WatchPaths returns the files whose changes should trigger a reload.
func (c *Config) WatchPaths() []string {
	var paths []string
	if c.Path != "" {
		paths = append(paths, c.Path)
	}
	if c.InitPath != "" {
		paths = append(paths, c.InitPath)
	}
	return paths
}

func expandHome(path string) string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return path
}
