// Package owningslice implements a container that owns a buffer and keeps
// a narrowed live view into it, obtained through aliasable's escape hatch.
// It is the reslicing exercise: however many times the view is narrowed,
// the container exposes exactly the current bounds and never a stale copy.
package owningslice

import (
	"aliasable"
	"aliasable/pin"
)

// Slice owns a buffer and a current sub-view of it. The view aliases the
// owned buffer, so writes through View are writes to the buffer itself.
type Slice[T any] struct {
	slot *pin.Slot[[]T]
	view []T
}

// New takes ownership of buf and starts with the view covering all of it.
func New[T any](buf []T) *Slice[T] {
	s := &Slice[T]{slot: pin.Place(aliasable.New(buf))}
	s.view = *s.slot.Value().GetExtended()
	return s
}

// Narrow reslices the current view to [lo:hi], relative to the current
// view's bounds like ordinary slicing, including ordinary slicing panics
// for out-of-range indices.
func (s *Slice[T]) Narrow(lo, hi int) {
	s.view = s.view[lo:hi]
}

// Reset widens the view back to the full owned buffer.
func (s *Slice[T]) Reset() {
	s.view = *s.slot.Value().GetExtended()
}

// View returns the current narrowed view.
func (s *Slice[T]) View() []T {
	return s.view
}

// Len returns the length of the current view.
func (s *Slice[T]) Len() int {
	return len(s.view)
}

// Close drops the view and releases the owned buffer's storage.
func (s *Slice[T]) Close() {
	s.view = nil
	s.slot.Close()
}
