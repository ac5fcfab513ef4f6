// Package pair implements a pair of values that hold escape-hatch
// back-references to each other. It is the canonical cross-linking
// exercise for aliasable: two pinned wrappers, each storing an extended
// pointer into the other, with destruction ordering that never leaves a
// dangling link behind.
package pair

import (
	"aliasable"
	"aliasable/pin"
)

// inner is the pinned payload: the value plus the peer back-reference.
// peer is always either nil or an extended pointer into the other pair's
// pinned storage.
type inner struct {
	value uint64
	peer  *inner
}

// Pair is one side of a linked pair. Create with New, connect with Link,
// and Close each side when done; closing order does not matter.
type Pair struct {
	slot *pin.Slot[inner]
}

// New constructs an unlinked pair pinned at its final address.
func New(value uint64) *Pair {
	return &Pair{slot: pin.Place(aliasable.New(inner{value: value}))}
}

// Link records extended references between a and b, replacing any links
// either side held before. Both pairs are already pinned, so the stored
// pointers stay valid until the pairs are closed.
func Link(a, b *Pair) {
	ai := a.slot.Value().GetExtended()
	bi := b.slot.Value().GetExtended()
	unlink(ai)
	unlink(bi)
	ai.peer = bi
	bi.peer = ai
}

// unlink severs in's link in both directions, so no former peer is left
// holding a back-reference to a pair that moved on.
func unlink(in *inner) {
	if in.peer != nil {
		in.peer.peer = nil
		in.peer = nil
	}
}

// Value returns this pair's own value.
func (p *Pair) Value() uint64 {
	return p.slot.Value().Get().value
}

// Peer returns the linked peer's value, read through the stored
// back-reference. ok is false when the pair is unlinked or its peer has
// been closed.
func (p *Pair) Peer() (value uint64, ok bool) {
	in := p.slot.Value().Get()
	if in.peer == nil {
		return 0, false
	}
	return in.peer.value, true
}

// Close unlinks the pair from its peer before releasing its own storage.
// Clearing the peer's back-reference first is what makes destruction order
// irrelevant: the survivor is never left pointing into released storage.
func (p *Pair) Close() {
	unlink(p.slot.Value().Get())
	p.slot.Close()
}
