package app

import (
	"github.com/google/uuid"

	"github.com/dshills/glance/internal/engine/buffer"
	"github.com/dshills/glance/internal/ref"
	"github.com/dshills/glance/internal/renderer/theme"
	"github.com/dshills/glance/internal/renderer/viewport"
)

// Document is an open buffer and the view navigating it.
//
// The document owns the buffer and the theme; the view only holds
// references to them. Close releases both, after which every navigation
// on State fails with viewport.ErrViewClosed.
type Document struct {
	// ID identifies the view in logs.
	ID uuid.UUID

	// Path is the file the buffer was read from (empty for standard input).
	Path string

	// Name is the display name shown in the status line.
	Name string

	// State is the cursor and viewport over Buffer.
	State *viewport.State

	buf   *buffer.Buffer
	src   *ref.Ref[viewport.Source]
	theme *ref.Ref[*theme.Theme]
}

// NewDocument creates a document viewing buf with th.
func NewDocument(buf *buffer.Buffer, path string, th *theme.Theme) *Document {
	name := buf.Name()
	if name == "" {
		name = "[stdin]"
	}

	src := ref.New[viewport.Source](buf)
	thRef := ref.New(th)
	return &Document{
		ID:    uuid.New(),
		Path:  path,
		Name:  name,
		State: viewport.New(src, thRef),
		buf:   buf,
		src:   src,
		theme: thRef,
	}
}

// Buffer returns the document's buffer.
func (d *Document) Buffer() *buffer.Buffer {
	return d.buf
}

// SetTheme installs th and releases the theme the view held before.
func (d *Document) SetTheme(th *theme.Theme) {
	old := d.theme
	d.theme = ref.New(th)
	d.State.SetTheme(d.theme)
	old.Release()
}

// Close releases the buffer and theme.
func (d *Document) Close() {
	d.src.Release()
	d.theme.Release()
}

// IsClosed reports whether Close has been called.
func (d *Document) IsClosed() bool {
	return !d.src.Live()
}
