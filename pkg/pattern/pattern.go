// Package pattern parses the short course references users write in their
// selection and blacklist files, e.g. "cs 51 hm-2", "hm3" or "po-1", and
// matches them against catalog sections.
package pattern

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/raxod502/hyposchedule/pkg/catalog"
)

// MalformedPatternError reports a non-blank user line that matches none of
// the pattern grammar.
type MalformedPatternError struct {
	Line string
}

func (e *MalformedPatternError) Error() string {
	return fmt.Sprintf("malformed course pattern %q", e.Line)
}

// Pattern is a partial course reference parsed from one line of user input.
// Absent fields are wildcards; SectionNumber is 0 when absent.
type Pattern struct {
	Department    string
	CourseCode    string
	School        string
	SectionNumber int
}

var (
	// A fully-qualified reference the way Section.Reference prints it,
	// e.g. "csci 51a hm-1". Only here may the course code carry a letter
	// suffix: the catalog admits alphanumeric codes, and the planner TUI
	// writes these canonical lines back to the selection files.
	canonicalRefRegexp = regexp.MustCompile(`^([a-z]+)\s+([0-9][0-9a-z]*)\s+(hm|po|jm)-([0-9]+)$`)

	// A reference that leads with a school code, e.g. "hm3" or "po-1".
	// Tried before the general grammar so the school token is not
	// mistaken for a department.
	schoolRefRegexp = regexp.MustCompile(`^(hm|po|jm)[\s-]*([0-9]+)?$`)

	// The general reference grammar: optional department letters, course
	// code digits, school code and section number, in that order.
	refRegexp = regexp.MustCompile(`^([a-z]+)?\s*([0-9]+)?\s*(hm|po|jm)?[\s-]*([0-9]+)?$`)
)

// Parse parses one line of user input. A blank or whitespace-only line is
// not a pattern at all and yields (nil, nil); callers skip it. This is
// deliberately distinct from an all-wildcard pattern, which would select or
// blacklist the entire catalog.
func Parse(line string) (*Pattern, error) {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	if trimmed == "" {
		return nil, nil
	}

	if m := canonicalRefRegexp.FindStringSubmatch(trimmed); m != nil {
		p := &Pattern{
			Department: m[1],
			CourseCode: m[2],
			School:     m[3],
		}
		if err := p.setSectionNumber(line, m[4]); err != nil {
			return nil, err
		}
		return p, nil
	}

	if m := schoolRefRegexp.FindStringSubmatch(trimmed); m != nil {
		p := &Pattern{School: m[1]}
		if err := p.setSectionNumber(line, m[2]); err != nil {
			return nil, err
		}
		return p, nil
	}

	m := refRegexp.FindStringSubmatch(trimmed)
	if m == nil {
		return nil, &MalformedPatternError{Line: line}
	}

	p := &Pattern{
		Department: m[1],
		CourseCode: m[2],
		School:     m[3],
	}
	if err := p.setSectionNumber(line, m[4]); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pattern) setSectionNumber(line, digits string) error {
	if digits == "" {
		return nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return &MalformedPatternError{Line: line}
	}
	p.SectionNumber = n
	return nil
}

// Matches reports whether the section satisfies every present field of the
// pattern. Department matches on a case-insensitive prefix, so "cs" picks
// out CSCI the way users abbreviate it; school and course code must match
// exactly (case-insensitively), and the section number numerically.
func (p *Pattern) Matches(s catalog.Section) bool {
	if p.Department != "" && !strings.HasPrefix(strings.ToLower(s.Department), p.Department) {
		return false
	}
	if p.CourseCode != "" && !strings.EqualFold(p.CourseCode, s.CourseCode) {
		return false
	}
	if p.School != "" && !strings.EqualFold(p.School, s.School) {
		return false
	}
	if p.SectionNumber != 0 && p.SectionNumber != s.SectionNumber {
		return false
	}
	return true
}
