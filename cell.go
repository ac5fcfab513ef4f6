package aliasable

// cellStore is the contract both storage backends satisfy. Exactly one
// backend is bound into Aliased per build (see store_norace.go and
// store_race.go); both stay compiled in every build so tests can hold them
// side by side and assert observational equivalence.
//
// Requirements on an implementation:
//   - construction takes ownership of the value and performs at most one
//     allocation;
//   - get and getExtended are constant time, and neither invalidates
//     pointers handed out earlier;
//   - release drops backend-owned storage exactly once, and repeated calls
//     must not corrupt any accounting;
//   - no method validates the no-relocation contract. That contract is
//     documented, not checked.
type cellStore[T any] interface {
	// get returns a pointer to the stored value, tracked by ordinary
	// lifetime rules.
	get() *T

	// getExtended returns a pointer whose validity past the wrapper's
	// natural lifetime is the caller's responsibility.
	getExtended() *T

	// take reads the value out in preparation for consuming the wrapper.
	take() T

	// release drops backend storage. For the direct backend this only
	// clears the value; for the boxed backend it also retires the cell.
	release()
}

var (
	_ cellStore[int] = (*directCell[int])(nil)
	_ cellStore[int] = (*boxedCell[int])(nil)
)
