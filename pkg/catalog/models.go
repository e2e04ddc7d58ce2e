package catalog

import (
	"fmt"
	"strings"

	"github.com/raxod502/hyposchedule/pkg/schedule"
)

// Record is one raw catalog entry: a course name plus the newline-separated
// scheduling blob listing its sections.
type Record struct {
	Name  string `json:"name"`
	Times string `json:"times"`
}

// Meeting is one weekly meeting of a section, with its location.
type Meeting struct {
	Campus   string         `json:"campus"`
	Building string         `json:"building"`
	Room     string         `json:"room"`
	Block    schedule.Block `json:"block"`
}

// Section is one scheduled offering of a course: a department, course code,
// school and section number, taught by one instructor at one or more weekly
// meetings. Sections are built once by the parser and never mutated.
type Section struct {
	CourseName    string    `json:"course_name"`
	Department    string    `json:"department"`
	CourseCode    string    `json:"course_code"`
	School        string    `json:"school"`
	SectionNumber int       `json:"section_number"`
	Instructor    string    `json:"instructor"`
	Meetings      []Meeting `json:"meetings"`
}

// Blocks returns the meeting blocks of the section, in meeting order.
func (s Section) Blocks() []schedule.Block {
	blocks := make([]schedule.Block, len(s.Meetings))
	for i, m := range s.Meetings {
		blocks[i] = m.Block
	}
	return blocks
}

// Compare defines a total order over sections: by department, course code,
// school and section number, then by the meeting blocks as a sequence.
func (s Section) Compare(other Section) int {
	if c := strings.Compare(s.Department, other.Department); c != 0 {
		return c
	}
	if c := strings.Compare(s.CourseCode, other.CourseCode); c != 0 {
		return c
	}
	if c := strings.Compare(s.School, other.School); c != 0 {
		return c
	}
	if s.SectionNumber != other.SectionNumber {
		if s.SectionNumber < other.SectionNumber {
			return -1
		}
		return 1
	}

	mine, theirs := s.Blocks(), other.Blocks()
	for i := 0; i < len(mine) && i < len(theirs); i++ {
		if c := mine[i].Compare(theirs[i]); c != 0 {
			return c
		}
	}
	if len(mine) != len(theirs) {
		if len(mine) < len(theirs) {
			return -1
		}
		return 1
	}
	return 0
}

// Equal reports whether two sections are the same offering: identity covers
// the identifying tuple and the meeting blocks, not free-text fields.
func (s Section) Equal(other Section) bool {
	return s.Compare(other) == 0
}

// ConflictsWith reports whether any meeting of s collides with any meeting
// of other.
func (s Section) ConflictsWith(other Section) bool {
	for _, mine := range s.Meetings {
		for _, theirs := range other.Meetings {
			if mine.Block.Overlaps(theirs.Block) {
				return true
			}
		}
	}
	return false
}

// Reference renders the section's catalog reference, e.g. "CSCI 5 HM-1".
func (s Section) Reference() string {
	return fmt.Sprintf("%s %s %s-%d", s.Department, s.CourseCode, s.School, s.SectionNumber)
}
