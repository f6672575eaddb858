package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
tab_width = 8

[theme]
name = "monokai"

[theme.colors]
text.foreground = "#FFFFFF"

[keys]
x = "quit"
`)

	config, err := NewTOMLLoaderWithFS(memfs, "/config.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config["tab_width"] != int64(8) {
		t.Errorf("tab_width = %v (%T), want 8", config["tab_width"], config["tab_width"])
	}
	if v, ok := GetPath(config, "theme.name"); !ok || v != "monokai" {
		t.Errorf("theme.name = %v, want monokai", v)
	}
	if v, ok := GetPath(config, "theme.colors.text.foreground"); !ok || v != "#FFFFFF" {
		t.Errorf("theme.colors.text.foreground = %v, want #FFFFFF", v)
	}
	if v, ok := GetPath(config, "keys.x"); !ok || v != "quit" {
		t.Errorf("keys.x = %v, want quit", v)
	}
}

func TestTOMLLoader_Missing(t *testing.T) {
	config, err := NewTOMLLoaderWithFS(NewMemFS(), "/missing.toml").Load()
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if config != nil {
		t.Errorf("expected nil config, got %v", config)
	}
}

func TestTOMLLoader_ParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[theme]\nname = \n")

	_, err := NewTOMLLoaderWithFS(memfs, "/bad.toml").Load()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Path != "/bad.toml" {
		t.Errorf("Path = %q, want /bad.toml", perr.Path)
	}
	if perr.Line != 2 {
		t.Errorf("Line = %d, want 2", perr.Line)
	}
	if !strings.Contains(perr.Error(), "/bad.toml") {
		t.Errorf("error should name the file: %v", perr)
	}
}

func TestTOMLLoader_Empty(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/empty.toml", "")

	config, err := NewTOMLLoaderWithFS(memfs, "/empty.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config == nil || len(config) != 0 {
		t.Errorf("expected empty non-nil map, got %v", config)
	}
}

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.yaml", `
theme:
  name: dracula
  colors:
    status.background: "#000000"
gutter:
  mode: hybrid
watch: true
keys:
  1: first_line
`)

	config, err := NewYAMLLoaderWithFS(memfs, "/config.yaml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if v, ok := GetPath(config, "theme.name"); !ok || v != "dracula" {
		t.Errorf("theme.name = %v, want dracula", v)
	}
	colors, ok := GetPath(config, "theme.colors")
	if !ok {
		t.Fatal("expected theme.colors")
	}
	if got := colors.(map[string]any)["status.background"]; got != "#000000" {
		t.Errorf("status.background = %v, want #000000", got)
	}
	if config["watch"] != true {
		t.Errorf("watch = %v, want true", config["watch"])
	}
	if v, ok := GetPath(config, "keys.1"); !ok || v != "first_line" {
		t.Errorf("keys.1 = %v, want first_line", v)
	}
}

func TestYAMLLoader_ParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.yaml", "theme: [unclosed\n")

	_, err := NewYAMLLoaderWithFS(memfs, "/bad.yaml").Load()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestLoadFromReader(t *testing.T) {
	config, err := NewTOMLLoader("").LoadFromReader(strings.NewReader(`watch = true`))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if config["watch"] != true {
		t.Errorf("watch = %v, want true", config["watch"])
	}

	config, err = NewYAMLLoader("").LoadFromReader(strings.NewReader("watch: false\n"))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if config["watch"] != false {
		t.Errorf("watch = %v, want false", config["watch"])
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"config.toml", "toml", false},
		{"config.TOML", "toml", false},
		{"config.yaml", "yaml", false},
		{"config.yml", "yaml", false},
		{"config.json", "", true},
		{"config", "", true},
	}

	for _, tt := range tests {
		l, err := ForPath(nil, tt.path)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("ForPath(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForPath(%q) unexpected error: %v", tt.path, err)
			continue
		}
		var got string
		switch l.(type) {
		case *TOMLLoader:
			got = "toml"
		case *YAMLLoader:
			got = "yaml"
		}
		if got != tt.want {
			t.Errorf("ForPath(%q) = %s loader, want %s", tt.path, got, tt.want)
		}
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"theme": map[string]any{"name": "default", "import": ""},
		"watch": false,
	}
	src := map[string]any{
		"theme": map[string]any{"name": "light"},
		"watch": true,
		"keys":  map[string]any{"x": "quit"},
	}

	got := DeepMerge(dst, src)

	if v, _ := GetPath(got, "theme.name"); v != "light" {
		t.Errorf("theme.name = %v, want light", v)
	}
	if _, ok := GetPath(got, "theme.import"); !ok {
		t.Error("theme.import should survive the merge")
	}
	if got["watch"] != true {
		t.Errorf("watch = %v, want true", got["watch"])
	}
	if v, _ := GetPath(got, "keys.x"); v != "quit" {
		t.Errorf("keys.x = %v, want quit", v)
	}

	if DeepMerge(nil, nil) == nil {
		t.Error("merging nil maps should return an empty map")
	}
}

func TestCloneIsDeep(t *testing.T) {
	src := map[string]any{
		"theme": map[string]any{"name": "default"},
		"list":  []any{map[string]any{"a": 1}},
	}
	dst := Clone(src)

	SetPath(dst, "theme.name", "light")
	dst["list"].([]any)[0].(map[string]any)["a"] = 2

	if v, _ := GetPath(src, "theme.name"); v != "default" {
		t.Errorf("source modified through clone: theme.name = %v", v)
	}
	if src["list"].([]any)[0].(map[string]any)["a"] != 1 {
		t.Error("source slice modified through clone")
	}
	if Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
}

func TestSetPathReplacesScalar(t *testing.T) {
	m := map[string]any{"theme": "dark"}
	SetPath(m, "theme.name", "light")

	if v, ok := GetPath(m, "theme.name"); !ok || v != "light" {
		t.Errorf("theme.name = %v, want light", v)
	}
	if _, ok := GetPath(m, "theme.name.deeper"); ok {
		t.Error("path through a scalar should not resolve")
	}
}
