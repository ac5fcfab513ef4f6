package pair

import (
	"testing"

	"aliasable/testutil"
)

func TestLinkCrossReads(t *testing.T) {
	a := New(10)
	b := New(20)
	defer a.Close()
	defer b.Close()

	Link(a, b)

	if got, ok := a.Peer(); !ok || got != 20 {
		t.Errorf("a.Peer = %d, %v; want 20, true", got, ok)
	}
	if got, ok := b.Peer(); !ok || got != 10 {
		t.Errorf("b.Peer = %d, %v; want 10, true", got, ok)
	}
}

func TestUnlinkedPeer(t *testing.T) {
	a := New(10)
	defer a.Close()

	if _, ok := a.Peer(); ok {
		t.Error("Peer reported a link on an unlinked pair")
	}
}

func TestValue(t *testing.T) {
	a := New(77)
	defer a.Close()

	if got := a.Value(); got != 77 {
		t.Errorf("Value = %d, want 77", got)
	}
}

// Closing one side must clear the survivor's back-reference before the
// closed side's storage is released, whichever side goes first.
func TestCloseOrdering(t *testing.T) {
	for _, closeFirst := range []string{"a", "b"} {
		t.Run("close_"+closeFirst, func(t *testing.T) {
			a := New(10)
			b := New(20)

			Link(a, b)

			first, second := a, b
			if closeFirst == "b" {
				first, second = b, a
			}

			first.Close()
			if _, ok := second.Peer(); ok {
				t.Error("survivor still reports a peer after the other side closed")
			}
			second.Close()
		})
	}
}

func TestRelink(t *testing.T) {
	a := New(1)
	b := New(2)
	c := New(3)
	defer a.Close()
	defer b.Close()
	defer c.Close()

	Link(a, b)
	Link(a, c)

	if got, ok := a.Peer(); !ok || got != 3 {
		t.Errorf("a.Peer after relink = %d, %v; want 3, true", got, ok)
	}
	if got, ok := c.Peer(); !ok || got != 1 {
		t.Errorf("c.Peer after relink = %d, %v; want 1, true", got, ok)
	}
	if _, ok := b.Peer(); ok {
		t.Error("b still reports a peer after a relinked elsewhere")
	}
}

func TestCloseReleasesBothSides(t *testing.T) {
	counter := testutil.NewCellCounter()

	a := New(10)
	b := New(20)
	Link(a, b)

	b.Close()
	a.Close()

	counter.Expect(t, 0)
}
