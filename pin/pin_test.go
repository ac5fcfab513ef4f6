package pin

import (
	"testing"

	"aliasable"
	"aliasable/testutil"
)

// cellsPerWrapper is how many boxed cells one pinned wrapper costs in this
// build: zero with the direct backend, one with the boxed backend.
func cellsPerWrapper() int64 {
	if aliasable.RaceEnabled {
		return 1
	}
	return 0
}

func TestPlaceStableAddress(t *testing.T) {
	s := Place(aliasable.New(uint64(7)))
	defer s.Close()

	if s.Value() != s.Value() {
		t.Error("Value returned different wrapper addresses across calls")
	}
	if s.Value().Get() != s.Value().Get() {
		t.Error("Get returned different value addresses for a pinned wrapper")
	}
}

func TestPlacedValueReadable(t *testing.T) {
	s := Place(aliasable.New("payload"))
	defer s.Close()

	if got := *s.Value().Get(); got != "payload" {
		t.Errorf("Get = %q, want %q", got, "payload")
	}
}

func TestExtendedSurvivesAcrossCalls(t *testing.T) {
	s := Place(aliasable.New(uint64(0)))
	defer s.Close()

	r := s.Value().GetExtended()
	*s.Value().Get() = 42

	if *r != 42 {
		t.Errorf("extended reference read %d, want 42", *r)
	}
}

func TestCloseReleasesStorage(t *testing.T) {
	counter := testutil.NewCellCounter()

	s := Place(aliasable.New(uint64(1)))
	counter.Expect(t, cellsPerWrapper())

	s.Close()
	counter.Expect(t, 0)
}
