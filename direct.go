package aliasable

import "unsafe"

// directCell stores the value inline: no allocation, no indirection, and a
// memory layout identical to storing T bare. This is the backend bound into
// Aliased in normal builds.
//
// Relocation safety is entirely the caller's contract (plus the vet marker
// on pin.Slot); nothing here detects a moved cell.
type directCell[T any] struct {
	val T
}

func newDirectCell[T any](val T) directCell[T] {
	return directCell[T]{val: val}
}

func (c *directCell[T]) get() *T {
	return &c.val
}

// getExtended returns the address of the inline value, laundered through a
// uintptr so the toolchain's escape and lifetime analysis does not tie the
// cell's apparent lifetime to the result. The xor is the identity; it only
// severs the data dependency the analysis follows.
//
// This is the same trick as runtime noescape and is valid as of Go 1.24.
// It is possible a future toolchain stops honoring it, at which point this
// backend gets reworked behind the same contract. USE CAREFULLY: the
// returned pointer does not keep the cell alive.
func (c *directCell[T]) getExtended() *T {
	p := unsafe.Pointer(&c.val)
	//nolint:staticcheck // The xor with 0 is the point, not a mistake.
	return (*T)(unsafe.Pointer(uintptr(p) ^ 0))
}

func (c *directCell[T]) take() T {
	return c.val
}

// release clears the value so anything it references becomes collectable.
// There is no storage to free beyond the value itself.
func (c *directCell[T]) release() {
	var zero T
	c.val = zero
}
