package schedule

import "fmt"

// Clock is a minute-precision time of day. The catalog writes times in
// 12-hour notation, but a Clock always holds the 24-hour form so that
// comparisons are plain integer comparisons.
type Clock struct {
	Hour   int `json:"hour"`   // 0-23
	Minute int `json:"minute"` // 0-59
}

// RangeError reports a numeric time field outside its valid range.
type RangeError struct {
	Field string
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d is out of range", e.Field, e.Value)
}

// NewClock builds a Clock from 12-hour notation. The hour must be 1-12 and
// the minute 0-59; 12 AM is midnight and 12 PM is noon.
func NewClock(hour12, minute int, pm bool) (Clock, error) {
	if hour12 < 1 || hour12 > 12 {
		return Clock{}, &RangeError{Field: "hour", Value: hour12}
	}
	if minute < 0 || minute > 59 {
		return Clock{}, &RangeError{Field: "minute", Value: minute}
	}

	hour := hour12 % 12
	if pm {
		hour += 12
	}

	return Clock{Hour: hour, Minute: minute}, nil
}

// Compare returns -1, 0 or 1 as c sorts before, equal to or after other.
func (c Clock) Compare(other Clock) int {
	if c.Hour != other.Hour {
		if c.Hour < other.Hour {
			return -1
		}
		return 1
	}
	if c.Minute != other.Minute {
		if c.Minute < other.Minute {
			return -1
		}
		return 1
	}
	return 0
}

// Before reports whether c is strictly earlier than other.
func (c Clock) Before(other Clock) bool {
	return c.Compare(other) < 0
}

// String renders the clock back in 12-hour notation, e.g. "9:05 AM".
func (c Clock) String() string {
	suffix := "AM"
	hour := c.Hour
	if hour >= 12 {
		suffix = "PM"
		hour -= 12
	}
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.Minute, suffix)
}
