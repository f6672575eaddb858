// Package ref provides non-owning references to values owned elsewhere.
//
// A Ref lets a component read a collaborator (a text buffer, a color theme)
// without taking ownership of it. The owner calls Release when the value
// goes away; every later Get reports ErrReleased instead of handing out a
// stale value.
package ref

import (
	"errors"
	"sync"
)

// ErrReleased is returned when resolving a reference whose referent has been released.
var ErrReleased = errors.New("reference released")

// Ref is a releasable, non-owning reference to a value of type T.
// The zero value is a released reference.
type Ref[T any] struct {
	mu    sync.RWMutex
	value T
	live  bool
}

// New returns a live reference to v.
func New[T any](v T) *Ref[T] {
	return &Ref[T]{value: v, live: true}
}

// Get resolves the reference.
// Returns ErrReleased if the referent has been released.
func (r *Ref[T]) Get() (T, error) {
	var zero T
	if r == nil {
		return zero, ErrReleased
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.live {
		return zero, ErrReleased
	}
	return r.value, nil
}

// Live reports whether the referent is still available.
func (r *Ref[T]) Live() bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.live
}

// Release drops the referent. Safe to call more than once.
func (r *Ref[T]) Release() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	r.value = zero
	r.live = false
}
