// Package testutil provides test-facing instrumentation for aliasable.
package testutil

import (
	"testing"

	"aliasable"
)

// CellCounter snapshots the boxed backend's live-cell accounting so tests
// can assert allocation/release deltas: exactly one cell per construction,
// exactly one retirement per release, never a double free, never a leak.
type CellCounter struct {
	start int64
}

// NewCellCounter snapshots the current live-cell count.
func NewCellCounter() *CellCounter {
	return &CellCounter{start: aliasable.LiveCells()}
}

// Delta returns the change in live cells since the snapshot.
func (c *CellCounter) Delta() int64 {
	return aliasable.LiveCells() - c.start
}

// Expect fails the test if the delta since the snapshot is not want.
func (c *CellCounter) Expect(t testing.TB, want int64) {
	t.Helper()
	if got := c.Delta(); got != want {
		t.Errorf("live cell delta = %d, want %d", got, want)
	}
}
