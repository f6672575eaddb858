package core

import (
	"testing"
)

func TestColorDefault(t *testing.T) {
	c := ColorDefault
	if !c.IsDefault() {
		t.Error("ColorDefault should be default")
	}
	if c.String() != "default" {
		t.Errorf("expected \"default\", got %q", c.String())
	}
}

func TestColorFromIndex(t *testing.T) {
	c := ColorFromIndex(42)

	if c.R != 42 {
		t.Errorf("expected index 42, got %d", c.R)
	}
	if !c.Indexed {
		t.Error("indexed color should have Indexed true")
	}
	if c.ToHex() != "" {
		t.Errorf("indexed color should have no hex form, got %q", c.ToHex())
	}
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b uint8
		wantErr bool
	}{
		{"#FF8040", 255, 128, 64, false},
		{"#ff8040", 255, 128, 64, false},
		{"FF8040", 255, 128, 64, false},
		{"#FFF", 255, 255, 255, false},
		{"#000", 0, 0, 0, false},
		{"invalid", 0, 0, 0, true},
		{"#GGG", 0, 0, 0, true},
		{"#12345", 0, 0, 0, true},
	}

	for _, tt := range tests {
		c, err := ColorFromHex(tt.hex)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ColorFromHex(%q) expected error, got nil", tt.hex)
			}
			continue
		}
		if err != nil {
			t.Errorf("ColorFromHex(%q) unexpected error: %v", tt.hex, err)
			continue
		}
		if c.R != tt.r || c.G != tt.g || c.B != tt.b {
			t.Errorf("ColorFromHex(%q) = (%d,%d,%d), want (%d,%d,%d)",
				tt.hex, c.R, c.G, c.B, tt.r, tt.g, tt.b)
		}
	}
}

func TestColorToHexRoundTrip(t *testing.T) {
	c := ColorFromRGB(18, 52, 86)
	if c.ToHex() != "#123456" {
		t.Errorf("expected #123456, got %s", c.ToHex())
	}
	back := MustHex(c.ToHex())
	if !back.Equals(c) {
		t.Errorf("expected %s, got %s", c, back)
	}
}

func TestColorBlendEndpoints(t *testing.T) {
	a := ColorFromRGB(30, 30, 30)
	b := ColorFromRGB(200, 100, 50)

	if got := a.Blend(b, 0); !got.Equals(a) {
		t.Errorf("blend 0 should return first color, got %s", got)
	}
	if got := a.Blend(b, 1); !got.Equals(b) {
		t.Errorf("blend 1 should return second color, got %s", got)
	}
	if got := a.Lighten(1); !got.Equals(ColorWhite) {
		t.Errorf("lighten 1 should return white, got %s", got)
	}
	if got := b.Darken(1); !got.Equals(ColorBlack) {
		t.Errorf("darken 1 should return black, got %s", got)
	}
}

func TestColorBlendIndexed(t *testing.T) {
	a := ColorFromIndex(1)
	b := ColorFromRGB(255, 255, 255)

	if got := a.Blend(b, 0.2); !got.Equals(a) {
		t.Errorf("expected nearer endpoint %s, got %s", a, got)
	}
	if got := a.Blend(b, 0.8); !got.Equals(b) {
		t.Errorf("expected nearer endpoint %s, got %s", b, got)
	}
}

func TestColorLightenIsLighter(t *testing.T) {
	c := ColorFromRGB(40, 40, 40)
	l := c.Lighten(0.3)
	if int(l.R)+int(l.G)+int(l.B) <= int(c.R)+int(c.G)+int(c.B) {
		t.Errorf("expected %s to be lighter than %s", l, c)
	}
}

func TestStyleBuilders(t *testing.T) {
	s := NewStyle(ColorWhite, ColorBlack).Bold().Reverse()

	if !s.Attributes.Has(AttrBold) || !s.Attributes.Has(AttrReverse) {
		t.Error("expected bold and reverse attributes")
	}
	if s.Attributes.Has(AttrDim) {
		t.Error("did not expect dim attribute")
	}
	if s.Attributes.Without(AttrBold).Has(AttrBold) {
		t.Error("Without should remove the attribute")
	}
	if DefaultStyle().IsDefault() != true {
		t.Error("DefaultStyle should be default")
	}
}

func TestStyleMerge(t *testing.T) {
	base := NewStyle(ColorWhite, ColorBlack)
	over := DefaultStyle().WithForeground(ColorGray).Reverse()

	got := base.Merge(over)
	if !got.Foreground.Equals(ColorGray) {
		t.Errorf("expected gray foreground, got %s", got.Foreground)
	}
	if !got.Background.Equals(ColorBlack) {
		t.Errorf("expected black background kept, got %s", got.Background)
	}
	if !got.Attributes.Has(AttrReverse) {
		t.Error("expected reverse attribute merged")
	}
}

func TestScreenRectSplit(t *testing.T) {
	r := RectFromSize(0, 0, 10, 40)

	strip, rest := r.SplitLeft(4)
	if strip.Width() != 4 || rest.Width() != 36 || rest.Left != 4 {
		t.Errorf("unexpected split: strip %+v rest %+v", strip, rest)
	}

	strip, rest = r.SplitLeft(100)
	if strip.Width() != 40 || !rest.IsEmpty() {
		t.Errorf("oversized split should consume whole rect: strip %+v rest %+v", strip, rest)
	}

	top, bottom := r.SplitBottom(1)
	if top.Height() != 9 || bottom.Height() != 1 || bottom.Top != 9 {
		t.Errorf("unexpected bottom split: top %+v bottom %+v", top, bottom)
	}
}

func TestScreenRectContains(t *testing.T) {
	r := RectFromSize(2, 3, 4, 5)

	tests := []struct {
		x, y int
		want bool
	}{
		{3, 2, true},
		{7, 5, true},
		{8, 5, false},
		{7, 6, false},
		{2, 2, false},
		{3, 1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestLineText(t *testing.T) {
	l := Line{NewSpan("ab", DefaultStyle()), NewSpan("c", DefaultStyle().Reverse())}

	if l.Text() != "abc" {
		t.Errorf("expected abc, got %q", l.Text())
	}
	if l.Len() != 3 {
		t.Errorf("expected len 3, got %d", l.Len())
	}

	cells := l.Cells()
	if len(cells) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(cells))
	}
	if !cells[2].Style.Attributes.Has(AttrReverse) {
		t.Error("third cell should carry the reverse style")
	}
}

func TestLineCellsWide(t *testing.T) {
	l := StyledLine("日a", DefaultStyle())
	cells := l.Cells()
	if len(cells) != 3 {
		t.Fatalf("expected 3 cells (wide + continuation + narrow), got %d", len(cells))
	}
	if cells[0].Width != 2 || cells[1].Width != 0 || cells[2].Width != 1 {
		t.Errorf("unexpected widths %d %d %d", cells[0].Width, cells[1].Width, cells[2].Width)
	}
	if StringWidth("日a") != 3 {
		t.Errorf("expected string width 3, got %d", StringWidth("日a"))
	}
}
