package schedule

import (
	"errors"
	"testing"
)

func TestClockConversion(t *testing.T) {
	midnight, err := NewClock(12, 0, false)
	if err != nil {
		t.Fatalf("NewClock(12, 0, AM) failed: %v", err)
	}
	if midnight.Hour != 0 || midnight.Minute != 0 {
		t.Errorf("expected 12:00 AM to be hour 0, got %d:%02d", midnight.Hour, midnight.Minute)
	}

	noon, err := NewClock(12, 0, true)
	if err != nil {
		t.Fatalf("NewClock(12, 0, PM) failed: %v", err)
	}
	if noon.Hour != 12 {
		t.Errorf("expected 12:00 PM to be hour 12, got %d", noon.Hour)
	}

	afternoon, _ := NewClock(1, 30, true)
	if afternoon.Hour != 13 || afternoon.Minute != 30 {
		t.Errorf("expected 1:30 PM to be 13:30, got %d:%02d", afternoon.Hour, afternoon.Minute)
	}
}

func TestClockOrderingMatchesMinutesSinceMidnight(t *testing.T) {
	// Every valid 12-hour input should order exactly like its
	// minutes-since-midnight value.
	type sample struct {
		clock   Clock
		minutes int
	}

	var samples []sample
	for _, pm := range []bool{false, true} {
		for hour := 1; hour <= 12; hour++ {
			for _, minute := range []int{0, 15, 59} {
				c, err := NewClock(hour, minute, pm)
				if err != nil {
					t.Fatalf("NewClock(%d, %d, %v) failed: %v", hour, minute, pm, err)
				}
				samples = append(samples, sample{c, c.Hour*60 + c.Minute})
			}
		}
	}

	for _, a := range samples {
		for _, b := range samples {
			want := 0
			if a.minutes < b.minutes {
				want = -1
			} else if a.minutes > b.minutes {
				want = 1
			}
			if got := a.clock.Compare(b.clock); got != want {
				t.Fatalf("Compare(%v, %v) = %d, want %d", a.clock, b.clock, got, want)
			}
		}
	}
}

func TestClockRangeErrors(t *testing.T) {
	cases := []struct {
		hour, minute int
	}{
		{0, 30},
		{13, 0},
		{10, 60},
		{10, -1},
	}

	for _, c := range cases {
		_, err := NewClock(c.hour, c.minute, false)
		if err == nil {
			t.Errorf("NewClock(%d, %d) should have failed", c.hour, c.minute)
			continue
		}
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("NewClock(%d, %d) returned %T, want *RangeError", c.hour, c.minute, err)
		}
	}
}

func TestClockString(t *testing.T) {
	cases := []struct {
		hour, minute int
		pm           bool
		want         string
	}{
		{12, 0, false, "12:00 AM"},
		{12, 0, true, "12:00 PM"},
		{9, 5, false, "9:05 AM"},
		{1, 30, true, "1:30 PM"},
		{11, 59, true, "11:59 PM"},
	}

	for _, c := range cases {
		clock, err := NewClock(c.hour, c.minute, c.pm)
		if err != nil {
			t.Fatalf("NewClock(%d, %d, %v) failed: %v", c.hour, c.minute, c.pm, err)
		}
		if got := clock.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
