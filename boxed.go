package aliasable

import "sync/atomic"

// liveCells counts boxed cells currently allocated. Atomic only so that
// -race test runs stay clean; the backends themselves remain
// unsynchronized, as documented in the package comment.
var liveCells atomic.Int64

// LiveCells reports how many boxed-backend cells are currently allocated.
// Intended for tests and diagnostics; in non-race builds the public
// wrapper never allocates a cell, so this stays at whatever the tests
// themselves created.
func LiveCells() int64 {
	return liveCells.Load()
}

// boxedCell stores the value in its own heap cell. Every access is one
// pointer hop, and the escape-hatch read is the plain cell pointer, which
// the race detector's checkptr model accepts as a first-class reference.
// This is the backend bound into Aliased in -race builds.
type boxedCell[T any] struct {
	cell *T
}

func newBoxedCell[T any](val T) boxedCell[T] {
	liveCells.Add(1)
	return boxedCell[T]{cell: &val}
}

func (c *boxedCell[T]) get() *T {
	return c.cell
}

// getExtended needs no laundering here: the cell is its own allocation, so
// handing out its address raises no interior-pointer questions with the
// verification tooling. The lifetime contract is the same as the direct
// backend's.
func (c *boxedCell[T]) getExtended() *T {
	return c.cell
}

func (c *boxedCell[T]) take() T {
	return *c.cell
}

// release retires the cell exactly once. The nil guard keeps accounting
// honest if a caller releases twice; the double release itself is still
// that caller's bug.
func (c *boxedCell[T]) release() {
	if c.cell == nil {
		return
	}
	c.cell = nil
	liveCells.Add(-1)
}
