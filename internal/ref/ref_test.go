package ref

import (
	"errors"
	"testing"
)

func TestRefGet(t *testing.T) {
	r := New("hello")

	v, err := r.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "hello" {
		t.Errorf("expected %q, got %q", "hello", v)
	}
	if !r.Live() {
		t.Error("new reference should be live")
	}
}

func TestRefRelease(t *testing.T) {
	r := New(42)
	r.Release()

	v, err := r.Get()
	if !errors.Is(err, ErrReleased) {
		t.Errorf("expected ErrReleased, got %v", err)
	}
	if v != 0 {
		t.Errorf("expected zero value after release, got %d", v)
	}
	if r.Live() {
		t.Error("released reference should not be live")
	}

	// Releasing twice is harmless
	r.Release()
}

func TestRefNilAndZero(t *testing.T) {
	var nilRef *Ref[int]
	if _, err := nilRef.Get(); !errors.Is(err, ErrReleased) {
		t.Errorf("nil ref: expected ErrReleased, got %v", err)
	}
	nilRef.Release()

	var zero Ref[int]
	if _, err := zero.Get(); !errors.Is(err, ErrReleased) {
		t.Errorf("zero ref: expected ErrReleased, got %v", err)
	}
}

type lineSource interface {
	LineCount() int
}

type fixedLines int

func (f fixedLines) LineCount() int { return int(f) }

func TestRefInterfaceValue(t *testing.T) {
	r := New[lineSource](fixedLines(7))

	src, err := r.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.LineCount() != 7 {
		t.Errorf("expected 7 lines, got %d", src.LineCount())
	}

	r.Release()
	src, err = r.Get()
	if err == nil || src != nil {
		t.Errorf("expected nil source and error after release, got %v, %v", src, err)
	}
}
