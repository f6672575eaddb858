package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/glance/internal/renderer/core"
	"github.com/dshills/glance/internal/renderer/gutter"
	"github.com/dshills/glance/internal/renderer/theme"
)

// DefaultScriptTimeout bounds how long an init script may run.
const DefaultScriptTimeout = 2 * time.Second

// RunScript executes an init script against cfg. The script runs in a
// sandboxed Lua state with only the base, table, string and math libraries
// and these globals:
//
//	bind(key, command)   bind a key; an empty command removes the binding
//	theme(name)          select a built-in theme
//	line_numbers(mode)   "absolute", "relative" or "hybrid"
//	color(slot, hex)     override a theme color slot
//	print(...)           append a line to cfg.Messages
//
// Changes made before an error are kept.
func RunScript(ctx context.Context, cfg *Config, name, src string, timeout time.Duration) error {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibraries(L)
	installAPI(L, cfg)

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	L.SetContext(ctx)

	fn, err := L.LoadString(src)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrScript, name, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrScript, name, err)
	}
	return nil
}

// openSafeLibraries opens only libraries without file system or process access.
func openSafeLibraries(L *lua.LState) {
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

func installAPI(L *lua.LState, cfg *Config) {
	L.SetGlobal("bind", L.NewFunction(func(L *lua.LState) int {
		key := L.CheckString(1)
		command := L.OptString(2, "")
		if err := cfg.Bind(key, command); err != nil {
			L.ArgError(1, err.Error())
		}
		return 0
	}))

	L.SetGlobal("theme", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if _, ok := theme.Lookup(name); !ok {
			L.ArgError(1, fmt.Sprintf("unknown theme %q", name))
		}
		cfg.Theme.Name = name
		return 0
	}))

	L.SetGlobal("line_numbers", L.NewFunction(func(L *lua.LState) int {
		mode, err := gutter.ParseMode(L.CheckString(1))
		if err != nil {
			L.ArgError(1, err.Error())
		}
		cfg.Gutter = mode
		return 0
	}))

	L.SetGlobal("color", L.NewFunction(func(L *lua.LState) int {
		slot := L.CheckString(1)
		hex := L.CheckString(2)
		if _, ok := theme.DefaultTheme().Get(slot); !ok {
			L.ArgError(1, fmt.Sprintf("unknown color slot %q", slot))
		}
		if _, err := core.ColorFromHex(hex); err != nil {
			L.ArgError(2, err.Error())
		}
		cfg.Theme.Colors[slot] = hex
		return 0
	}))

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, L.GetTop())
		for i := range parts {
			parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
		}
		cfg.Messages = append(cfg.Messages, strings.Join(parts, "\t"))
		return 0
	}))
}
