package schedule

import (
	"fmt"
	"strings"
)

// Weekdays is the fixed weekday alphabet used by the catalog, in priority
// order. R is Thursday; the catalog has no weekend meetings.
const Weekdays = "MTWRF"

// Block is one weekly meeting time: a set of weekdays plus a begin and end
// clock. Days is always a canonical subset of Weekdays (sorted, no
// duplicates), which makes Block comparable and usable as a map key.
type Block struct {
	Days  string `json:"days"`
	Begin Clock  `json:"begin"`
	End   Clock  `json:"end"`
}

// NewBlock builds a Block, canonicalizing days into Weekdays order with set
// semantics. Duplicate or out-of-alphabet letters in days are dropped.
func NewBlock(days string, begin, end Clock) Block {
	var b strings.Builder
	for i := 0; i < len(Weekdays); i++ {
		if strings.IndexByte(days, Weekdays[i]) >= 0 {
			b.WriteByte(Weekdays[i])
		}
	}
	return Block{Days: b.String(), Begin: begin, End: end}
}

// HasDay reports whether the block meets on the given weekday letter.
func (b Block) HasDay(day byte) bool {
	return strings.IndexByte(b.Days, day) >= 0
}

// Overlaps reports whether two blocks collide: their day sets must share a
// day and their time ranges must intersect. Time ranges are half-open, so a
// block ending at 10:00 does not overlap one beginning at 10:00.
func (b Block) Overlaps(other Block) bool {
	shared := false
	for i := 0; i < len(b.Days); i++ {
		if other.HasDay(b.Days[i]) {
			shared = true
			break
		}
	}
	if !shared {
		return false
	}
	return !(b.End.Compare(other.Begin) <= 0 || b.Begin.Compare(other.End) >= 0)
}

// Compare defines a deterministic total order over blocks: by begin time,
// then end time, then day-set membership checked in Weekdays priority order.
// Grouping output relies on this order being stable across runs.
func (b Block) Compare(other Block) int {
	if c := b.Begin.Compare(other.Begin); c != 0 {
		return c
	}
	if c := b.End.Compare(other.End); c != 0 {
		return c
	}
	for i := 0; i < len(Weekdays); i++ {
		day := Weekdays[i]
		mine, theirs := b.HasDay(day), other.HasDay(day)
		if mine && !theirs {
			return -1
		}
		if theirs && !mine {
			return 1
		}
	}
	return 0
}

// String renders the block the way the report prints it, e.g.
// "MWF from 10:00 AM to 10:50 AM".
func (b Block) String() string {
	return fmt.Sprintf("%s from %s to %s", b.Days, b.Begin, b.End)
}
