//go:build !race

package aliasable

// RaceEnabled reports whether this build binds the boxed backend because
// the race detector is active. The tag is supplied by the toolchain (-race
// sets it); this package never tries to detect the detector itself.
const RaceEnabled = false

// storeOf is the backend bound into Aliased for this build: inline
// storage, zero cost.
type storeOf[T any] = directCell[T]

func newStore[T any](val T) storeOf[T] {
	return newDirectCell(val)
}
