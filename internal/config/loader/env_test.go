package loader

import (
	"testing"
)

func TestEnvLoader_Load(t *testing.T) {
	t.Setenv("GLANCE_THEME", "light")
	t.Setenv("GLANCE_LOG_LEVEL", "debug")
	t.Setenv("GLANCE_TAB_WIDTH", "2")

	config, err := NewEnvLoader(DefaultEnvPrefix).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := GetPath(config, "theme.name"); !ok || val != "light" {
		t.Errorf("theme.name = %v, want 'light'", val)
	}
	if val, ok := GetPath(config, "log.level"); !ok || val != "debug" {
		t.Errorf("log.level = %v, want 'debug'", val)
	}
	if val, ok := GetPath(config, "tab_width"); !ok || val != int64(2) {
		t.Errorf("tab_width = %v (%T), want 2", val, val)
	}
}

func TestEnvLoader_LoadUnmapped(t *testing.T) {
	t.Setenv("GLANCE_LOG_FILE", "/tmp/glance.log")
	t.Setenv("GLANCE_WATCH", "yes")
	t.Setenv("OTHER_THEME", "ignored")

	config, err := NewEnvLoader(DefaultEnvPrefix).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := GetPath(config, "log.file"); !ok || val != "/tmp/glance.log" {
		t.Errorf("log.file = %v, want '/tmp/glance.log'", val)
	}
	if val, ok := GetPath(config, "watch"); !ok || val != true {
		t.Errorf("watch = %v, want true", val)
	}
	if _, ok := config["other"]; ok {
		t.Error("variables without the prefix should be ignored")
	}
}

func TestEnvLoader_AddMapping(t *testing.T) {
	t.Setenv("GLANCE_COLORS_FG", "#FFFFFF")

	l := NewEnvLoader(DefaultEnvPrefix)
	l.AddMapping("GLANCE_COLORS_FG", "theme.colors.text.foreground")

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if val, ok := GetPath(config, "theme.colors.text.foreground"); !ok || val != "#FFFFFF" {
		t.Errorf("mapped value = %v, want #FFFFFF", val)
	}
}

func TestEnvLoader_envToPath(t *testing.T) {
	l := NewEnvLoader(DefaultEnvPrefix)

	tests := []struct {
		env  string
		want string
	}{
		{"GLANCE_WATCH", "watch"},
		{"GLANCE_LOG_FILE", "log.file"},
		{"GLANCE_THEME_IMPORT", "theme.import"},
		{"GLANCE_KEYS_CTRL_X", "keys.ctrl_x"},
	}

	for _, tt := range tests {
		if got := l.envToPath(tt.env); got != tt.want {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"On", true},
		{"no", false},
		{"1", int64(1)},
		{"0", int64(0)},
		{"-3", int64(-3)},
		{"1.5", 1.5},
		{"#1E1E1E", "#1E1E1E"},
		{"relative", "relative"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := parseValue(tt.in); got != tt.want {
			t.Errorf("parseValue(%q) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
		}
	}
}
