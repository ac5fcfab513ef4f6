//go:build race

package aliasable

// RaceEnabled reports whether this build binds the boxed backend because
// the race detector is active. The tag is supplied by the toolchain (-race
// sets it); this package never tries to detect the detector itself.
const RaceEnabled = true

// storeOf is the backend bound into Aliased for this build: one heap cell
// per wrapper, so the detector's checkptr model sees only first-class
// pointers.
type storeOf[T any] = boxedCell[T]

func newStore[T any](val T) storeOf[T] {
	return newBoxedCell(val)
}
