// Package config provides the configuration system for glance.
//
// Configuration is assembled from sources with higher sources overriding lower:
//
//	┌─────────────────────────────┐
//	│  5. Command Line Flags      │  ← Highest priority, applied by the caller
//	├─────────────────────────────┤
//	│  4. Init Script             │  ← init.lua next to the config file
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← GLANCE_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/glance/config.toml (or .yaml)
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: TOML, YAML and environment variable loading, deep merging
//   - watcher: file watching for live reload
//
// # Settings
//
//	theme.name              built-in theme ("default", "monokai", ...)
//	theme.import            VS Code color theme JSON to layer on top
//	theme.colors.<slot>     hex color override for one theme slot
//	gutter.mode             absolute, relative or hybrid line numbers
//	keys.<key>              command bound to a key ("none" removes a default)
//	log.level, log.file     application log
//	watch                   reload when the config file or init script changes
//	tab_width               spaces per tab stop
//
// # Basic Usage
//
//	cfg, err := config.Load(ctx)
//	if err != nil {
//	    return err
//	}
//	th, err := cfg.ResolveTheme()
package config
