package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/raxod502/hyposchedule/pkg/schedule"
)

// Catalog line grammar, e.g.
//
//	CSCI5 HM-1 (Smith): MWF 10:00 - 10:50 AM; Claremont, Platt, 101
//
// The school code is one of the fixed consortium codes.
var lineRegexp = regexp.MustCompile(
	`^([A-Z]+)\s*([0-9A-Z]+)\s*(HM|PO|JM)-([0-9]+)\s+\(([^)]+)\):\s+(.+)$`)

// Time spec grammar. The begin-time AM/PM marker is optional; the catalog
// writes "10:00 - 11:15 AM" when both ends share a marker.
var timeSpecRegexp = regexp.MustCompile(
	`([MTWRF]+)\s+([0-9]+):([0-9]+)\s*(AM|PM)?\s+-\s+([0-9]+):([0-9]+)\s+(AM|PM);\s+([^,]+),\s+([^,]+),\s+([^,]+)`)

// ParseCatalog decodes a JSON catalog dump (an array of {name, times}
// records) from r and parses it into sections.
func ParseCatalog(r io.Reader) ([]Section, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode catalog JSON: %w", err)
	}
	return ParseRecords(records)
}

// ParseRecords converts raw catalog records into sections, one per non-empty
// line of each record's times blob. The result preserves catalog order.
// The first malformed line aborts the parse.
func ParseRecords(records []Record) ([]Section, error) {
	var sections []Section
	for _, record := range records {
		found := false
		for _, line := range strings.Split(record.Times, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			section, err := parseLine(record.Name, line)
			if err != nil {
				return nil, err
			}
			sections = append(sections, section)
			found = true
		}
		// A course with no section lines at all means the dump is broken,
		// not that the course is unscheduled.
		if !found {
			return nil, &MalformedLineError{Line: record.Name, Reason: "record contains no time specs"}
		}
	}
	return sections, nil
}

func parseLine(courseName, line string) (Section, error) {
	m := lineRegexp.FindStringSubmatch(line)
	if m == nil {
		return Section{}, &MalformedLineError{Line: line, Reason: "does not match the catalog line grammar"}
	}

	department, courseCode, school, instructor := m[1], m[2], m[3], m[5]

	sectionNumber, err := strconv.Atoi(m[4])
	if err != nil {
		return Section{}, &MalformedLineError{Line: line, Reason: "unreadable section number", Err: err}
	}
	if sectionNumber < 1 {
		return Section{}, &MalformedLineError{Line: line, Reason: fmt.Sprintf("section number must be positive, got %d", sectionNumber)}
	}

	meetings, err := parseTimeSpecs(line, m[6])
	if err != nil {
		return Section{}, err
	}

	sort.SliceStable(meetings, func(i, j int) bool {
		return meetings[i].Block.Compare(meetings[j].Block) < 0
	})

	return Section{
		CourseName:    courseName,
		Department:    department,
		CourseCode:    courseCode,
		School:        school,
		SectionNumber: sectionNumber,
		Instructor:    instructor,
		Meetings:      meetings,
	}, nil
}

func parseTimeSpecs(line, blob string) ([]Meeting, error) {
	specs := timeSpecRegexp.FindAllStringSubmatch(blob, -1)
	if len(specs) == 0 {
		return nil, &MalformedLineError{Line: line, Reason: fmt.Sprintf("no meeting times found in %q", blob)}
	}

	meetings := make([]Meeting, 0, len(specs))
	for _, spec := range specs {
		days := spec[1]
		beginMarker, endMarker := spec[4], spec[7]
		// A begin time with no marker inherits the end time's marker.
		if beginMarker == "" {
			beginMarker = endMarker
		}

		begin, err := parseClock(line, spec[2], spec[3], beginMarker)
		if err != nil {
			return nil, err
		}
		end, err := parseClock(line, spec[5], spec[6], endMarker)
		if err != nil {
			return nil, err
		}

		meetings = append(meetings, Meeting{
			Campus:   strings.TrimSpace(spec[8]),
			Building: strings.TrimSpace(spec[9]),
			Room:     strings.TrimSpace(spec[10]),
			Block:    schedule.NewBlock(days, begin, end),
		})
	}
	return meetings, nil
}

func parseClock(line, hourDigits, minuteDigits, marker string) (schedule.Clock, error) {
	hour, err := strconv.Atoi(hourDigits)
	if err != nil {
		return schedule.Clock{}, &MalformedLineError{Line: line, Reason: "unreadable hour", Err: err}
	}
	minute, err := strconv.Atoi(minuteDigits)
	if err != nil {
		return schedule.Clock{}, &MalformedLineError{Line: line, Reason: "unreadable minute", Err: err}
	}

	clock, err := schedule.NewClock(hour, minute, marker == "PM")
	if err != nil {
		return schedule.Clock{}, &MalformedLineError{Line: line, Reason: err.Error(), Err: err}
	}
	return clock, nil
}
