// Package aliasable provides a wrapper for values that are deliberately
// aliased by interior pointers, as needed by self-referential data
// structures.
//
// # The problem
//
// A self-referential structure stores, somewhere inside itself, a pointer
// back into its own storage. Go permits this, but it leaves the structure
// with an obligation the type system cannot see: once such an interior
// pointer exists, the structure must never be copied or moved, because the
// stored pointer would keep aiming at the old location and reads through it
// would go stale. Worse, the way such pointers are usually smuggled past
// the structure's natural lifetime involves unsafe.Pointer conversions that
// the dynamic verification tooling enabled by the race detector (checkptr)
// is built to scrutinize.
//
// # What Aliased does
//
// Aliased[T] is a transparent container for a T with exactly two read
// paths:
//
//   - Get returns an ordinary pointer to the value, good for as long as the
//     wrapper itself is reachable.
//   - GetExtended returns an escape-hatch pointer intended to be stored
//     inside the structure itself, or in a sibling structure, outliving the
//     borrow that produced it.
//
// Two storage backends implement these, selected once per build by the
// race build tag:
//
//   - In normal builds the value is stored inline with zero indirection and
//     zero allocation. The escape-hatch pointer is laundered through a
//     uintptr so the toolchain does not pin the wrapper's apparent lifetime
//     to it.
//   - In -race builds the value lives in its own heap cell, and both read
//     paths hand out the plain pointer to that cell, which the detector's
//     model accepts. This costs one allocation and one indirection.
//
// Both backends are observationally identical for any valid call sequence.
// Writes made through any pointer the surrounding structure permits are
// visible through every previously obtained extended pointer; that
// visibility is the entire point of this package.
//
// # The contract
//
// Callers must uphold two rules, neither of which is checked at runtime:
//
//  1. After the first call to Get or GetExtended, the wrapper must not be
//     copied or moved. Place it at a stable address first; the pin package
//     provides a slot type for this and makes violations visible to
//     go vet -copylocks.
//  2. An extended pointer must not be used past the point where the wrapper
//     is released or becomes unreachable. GetExtended deliberately hides
//     the pointer from the toolchain's lifetime tracking, so nothing will
//     keep the wrapper alive on your behalf.
//
// Breaking either rule is undefined behavior, not a reported error.
//
// The wrapper performs no synchronization. If the surrounding structure is
// shared across goroutines, that structure supplies the locking.
package aliasable

// Aliased is a container for a value that may be referenced by interior
// pointers with caller-managed lifetimes.
//
// The zero value holds the zero value of T. An Aliased is freely copyable
// up until the first call to Get or GetExtended; after that it must stay
// where it is. See the package documentation for the full contract.
type Aliased[T any] struct {
	store storeOf[T]
}

// New moves val into backend storage and returns the wrapper by value.
// The caller then moves the wrapper exactly once into its final resting
// place (typically a pin.Slot) before handing out any pointers to the
// contents. New never fails; allocation exhaustion in the boxed backend is
// fatal by runtime policy rather than a returned error.
func New[T any](val T) Aliased[T] {
	return Aliased[T]{store: newStore(val)}
}

// Get returns a pointer to the contained value. The pointer participates
// in ordinary lifetime tracking: holding it keeps the wrapper reachable,
// and it is valid on both backends for as long as the wrapper is.
func (a *Aliased[T]) Get() *T {
	return a.store.get()
}

// GetExtended returns an escape-hatch pointer to the contained value, for
// storing inside self-referential structures.
//
// Unchecked preconditions: the wrapper is already at its final address and
// will not be copied or moved afterwards, and the wrapper outlives every
// use of the returned pointer. Violations are undefined behavior. USE
// CAREFULLY.
func (a *Aliased[T]) GetExtended() *T {
	return a.store.getExtended()
}

// Take consumes the wrapper, returning the inner value and releasing
// backend storage. Only sound when no extended pointer obtained from this
// wrapper is still in use.
func (a *Aliased[T]) Take() T {
	val := a.store.take()
	a.store.release()
	return val
}

// Release drops backend storage ahead of garbage collection. Calling it is
// optional; it exists so that destruction is an observable event (see
// LiveCells). The wrapper must not be used after Release.
func (a *Aliased[T]) Release() {
	a.store.release()
}

// String returns a fixed placeholder. The contained value is deliberately
// not read: formatting often happens from debuggers and panics at moments
// when the aliasing contract is mid-violation.
func (a *Aliased[T]) String() string {
	return "Aliased"
}
