// Package pin supplies the non-relocatable resting place that aliasable's
// contract asks for: a Slot owns an Aliased value at a stable heap
// address, and Go's non-moving heap keeps it there for the slot's whole
// life. Placing a wrapper in a slot is the single permitted move between
// construction and destruction.
package pin

import "aliasable"

// noCopy makes go vet -copylocks report any copy of a containing value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Slot holds a pinned Aliased value. A Slot must not be copied after
// creation; go vet enforces this mechanically via the embedded marker,
// which is the checkable half of the wrapper's no-relocation contract.
type Slot[T any] struct {
	noCopy noCopy
	val    aliasable.Aliased[T]
}

// Place moves the wrapper into a freshly allocated slot and returns the
// slot. This is the wrapper's one move; every pointer handed out by the
// wrapper afterwards stays valid for the slot's lifetime.
func Place[T any](a aliasable.Aliased[T]) *Slot[T] {
	return &Slot[T]{val: a}
}

// Value returns the pinned wrapper. The returned pointer is stable across
// calls for the life of the slot.
func (s *Slot[T]) Value() *aliasable.Aliased[T] {
	return &s.val
}

// Close releases the pinned wrapper's storage. The slot must not be used
// afterwards, and no extended pointer obtained from the wrapper may be
// used either.
func (s *Slot[T]) Close() {
	s.val.Release()
}
