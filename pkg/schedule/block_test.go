package schedule

import "testing"

func mustClock(t *testing.T, hour, minute int, pm bool) Clock {
	t.Helper()
	c, err := NewClock(hour, minute, pm)
	if err != nil {
		t.Fatalf("NewClock(%d, %d, %v) failed: %v", hour, minute, pm, err)
	}
	return c
}

func TestNewBlockCanonicalizesDays(t *testing.T) {
	begin := mustClock(t, 10, 0, false)
	end := mustClock(t, 10, 50, false)

	// Out-of-order and duplicated day letters collapse into a set in
	// MTWRF order.
	b := NewBlock("FWMM", begin, end)
	if b.Days != "MWF" {
		t.Errorf("expected canonical days MWF, got %q", b.Days)
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	blocks := []Block{
		NewBlock("MWF", mustClock(t, 10, 0, false), mustClock(t, 10, 50, false)),
		NewBlock("MWF", mustClock(t, 10, 30, false), mustClock(t, 11, 20, false)),
		NewBlock("TR", mustClock(t, 10, 0, false), mustClock(t, 11, 15, false)),
		NewBlock("F", mustClock(t, 1, 0, true), mustClock(t, 2, 15, true)),
	}

	for _, a := range blocks {
		for _, b := range blocks {
			if a.Overlaps(b) != b.Overlaps(a) {
				t.Errorf("Overlaps is not symmetric for %v and %v", a, b)
			}
		}
	}
}

func TestOverlapsDisjointDays(t *testing.T) {
	a := NewBlock("MWF", mustClock(t, 10, 0, false), mustClock(t, 10, 50, false))
	b := NewBlock("TR", mustClock(t, 10, 0, false), mustClock(t, 10, 50, false))

	if a.Overlaps(b) {
		t.Errorf("blocks on disjoint days must never overlap, %v vs %v", a, b)
	}
}

func TestOverlapsHalfOpenBoundary(t *testing.T) {
	morning := NewBlock("MWF", mustClock(t, 9, 0, false), mustClock(t, 10, 0, false))
	next := NewBlock("MWF", mustClock(t, 10, 0, false), mustClock(t, 10, 50, false))

	if morning.Overlaps(next) {
		t.Errorf("back-to-back blocks must not overlap (end == begin)")
	}

	overlapping := NewBlock("W", mustClock(t, 9, 30, false), mustClock(t, 10, 30, false))
	if !morning.Overlaps(overlapping) {
		t.Errorf("expected %v to overlap %v", morning, overlapping)
	}
}

func TestBlockCompare(t *testing.T) {
	early := NewBlock("TR", mustClock(t, 8, 0, false), mustClock(t, 9, 15, false))
	late := NewBlock("MWF", mustClock(t, 10, 0, false), mustClock(t, 10, 50, false))
	lateLonger := NewBlock("MWF", mustClock(t, 10, 0, false), mustClock(t, 11, 50, false))
	lateTuesday := NewBlock("TR", mustClock(t, 10, 0, false), mustClock(t, 10, 50, false))

	if early.Compare(late) >= 0 {
		t.Errorf("earlier begin must sort first")
	}
	if late.Compare(lateLonger) >= 0 {
		t.Errorf("same begin, earlier end must sort first")
	}
	// Same times: the block meeting on Monday outranks the one that does not.
	if late.Compare(lateTuesday) >= 0 {
		t.Errorf("MWF must sort before TR at equal times")
	}
	if late.Compare(late) != 0 {
		t.Errorf("a block must compare equal to itself")
	}
}

func TestBlockString(t *testing.T) {
	b := NewBlock("MWF", mustClock(t, 10, 0, false), mustClock(t, 10, 50, false))
	want := "MWF from 10:00 AM to 10:50 AM"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
