package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/raxod502/hyposchedule/pkg/schedule"
)

func TestParseRecordsBasicLine(t *testing.T) {
	records := []Record{
		{
			Name:  "Introduction to Computer Science",
			Times: "CSCI5 HM-1 (Smith): MWF 10:00 - 10:50 AM; Claremont, Platt, 101",
		},
	}

	sections, err := ParseRecords(records)
	if err != nil {
		t.Fatalf("ParseRecords failed: %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}

	s := sections[0]
	if s.Department != "CSCI" {
		t.Errorf("expected department CSCI, got %q", s.Department)
	}
	if s.CourseCode != "5" {
		t.Errorf("expected course code 5, got %q", s.CourseCode)
	}
	if s.School != "HM" {
		t.Errorf("expected school HM, got %q", s.School)
	}
	if s.SectionNumber != 1 {
		t.Errorf("expected section number 1, got %d", s.SectionNumber)
	}
	if s.Instructor != "Smith" {
		t.Errorf("expected instructor Smith, got %q", s.Instructor)
	}
	if s.CourseName != "Introduction to Computer Science" {
		t.Errorf("unexpected course name %q", s.CourseName)
	}

	if len(s.Meetings) != 1 {
		t.Fatalf("expected 1 meeting, got %d", len(s.Meetings))
	}
	m := s.Meetings[0]
	if m.Block.Days != "MWF" {
		t.Errorf("expected days MWF, got %q", m.Block.Days)
	}
	if m.Block.Begin != (schedule.Clock{Hour: 10, Minute: 0}) {
		t.Errorf("expected begin 10:00, got %v", m.Block.Begin)
	}
	if m.Block.End != (schedule.Clock{Hour: 10, Minute: 50}) {
		t.Errorf("expected end 10:50, got %v", m.Block.End)
	}
	if m.Campus != "Claremont" || m.Building != "Platt" || m.Room != "101" {
		t.Errorf("unexpected location %q %q %q", m.Campus, m.Building, m.Room)
	}
}

func TestParseRecordsInheritsEndMarker(t *testing.T) {
	// "10:00 - 11:15 AM" means both ends are AM; a bare begin time
	// inherits the end marker. Mixed markers stay explicit.
	records := []Record{
		{
			Name:  "Physics Lab",
			Times: "PHYS10 HM-1 (Jones): TR 10:00 - 11:15 AM; Claremont, Keck, 24",
		},
		{
			Name:  "Seminar",
			Times: "PHYS195 HM-1 (Saeta): F 11:00 AM - 12:15 PM; Claremont, Shanahan, 3460",
		},
	}

	sections, err := ParseRecords(records)
	if err != nil {
		t.Fatalf("ParseRecords failed: %v", err)
	}

	lab := sections[0].Meetings[0].Block
	if lab.Begin != (schedule.Clock{Hour: 10, Minute: 0}) {
		t.Errorf("expected begin 10:00 AM (inherited marker), got %v", lab.Begin)
	}
	if lab.End != (schedule.Clock{Hour: 11, Minute: 15}) {
		t.Errorf("expected end 11:15 AM, got %v", lab.End)
	}

	seminar := sections[1].Meetings[0].Block
	if seminar.Begin != (schedule.Clock{Hour: 11, Minute: 0}) {
		t.Errorf("expected begin 11:00 AM (explicit marker), got %v", seminar.Begin)
	}
	if seminar.End != (schedule.Clock{Hour: 12, Minute: 15}) {
		t.Errorf("expected end 12:15 PM, got %v", seminar.End)
	}
}

func TestParseRecordsMultipleTimeSpecs(t *testing.T) {
	records := []Record{
		{
			Name: "Chemistry",
			Times: "CHEM23 HM-2 (Lee): TR 1:00 PM - 2:15 PM; Claremont, Jacobs, 120, " +
				"W 8:00 - 10:50 AM; Claremont, Jacobs, B15",
		},
	}

	sections, err := ParseRecords(records)
	if err != nil {
		t.Fatalf("ParseRecords failed: %v", err)
	}

	s := sections[0]
	if len(s.Meetings) != 2 {
		t.Fatalf("expected 2 meetings, got %d", len(s.Meetings))
	}

	// Meetings are sorted ascending by block: the Wednesday morning lab
	// begins before the afternoon lecture.
	if s.Meetings[0].Block.Days != "W" {
		t.Errorf("expected the morning lab first, got days %q", s.Meetings[0].Block.Days)
	}
	if s.Meetings[1].Block.Days != "TR" {
		t.Errorf("expected the lecture second, got days %q", s.Meetings[1].Block.Days)
	}
}

func TestParseRecordsPreservesCatalogOrder(t *testing.T) {
	records := []Record{
		{Name: "Zoology", Times: "BIOL52 PO-1 (Adams): MW 2:45 - 4:00 PM; Claremont, Seaver, 102"},
		{
			Name: "Algebra",
			Times: "MATH171 HM-1 (Su): MWF 9:00 - 9:50 AM; Claremont, Shanahan, 3461\n" +
				"MATH171 HM-2 (Su): MWF 10:00 - 10:50 AM; Claremont, Shanahan, 3461",
		},
	}

	sections, err := ParseRecords(records)
	if err != nil {
		t.Fatalf("ParseRecords failed: %v", err)
	}
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}

	got := []string{sections[0].Reference(), sections[1].Reference(), sections[2].Reference()}
	want := []string{"BIOL 52 PO-1", "MATH 171 HM-1", "MATH 171 HM-2"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("section %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestParseRecordsMalformedLine(t *testing.T) {
	cases := []struct {
		name  string
		times string
	}{
		{"garbage line", "this is not a catalog line"},
		{"bad school code", "CSCI5 XX-1 (Smith): MWF 10:00 - 10:50 AM; Claremont, Platt, 101"},
		{"zero section number", "CSCI5 HM-0 (Smith): MWF 10:00 - 10:50 AM; Claremont, Platt, 101"},
		{"no time specs", "CSCI5 HM-1 (Smith): arranged"},
		{"hour out of range", "CSCI5 HM-1 (Smith): MWF 13:00 - 14:50 AM; Claremont, Platt, 101"},
	}

	for _, c := range cases {
		_, err := ParseRecords([]Record{{Name: "Course", Times: c.times}})
		if err == nil {
			t.Errorf("%s: expected an error, got none", c.name)
			continue
		}
		var lineErr *MalformedLineError
		if !errors.As(err, &lineErr) {
			t.Errorf("%s: expected *MalformedLineError, got %T (%v)", c.name, err, err)
		}
	}
}

func TestParseRecordsRangeErrorInChain(t *testing.T) {
	_, err := ParseRecords([]Record{{
		Name:  "Course",
		Times: "CSCI5 HM-1 (Smith): MWF 10:75 - 10:50 AM; Claremont, Platt, 101",
	}})
	if err == nil {
		t.Fatalf("expected an error for minute 75")
	}

	var rangeErr *schedule.RangeError
	if !errors.As(err, &rangeErr) {
		t.Errorf("expected a *schedule.RangeError in the chain, got %v", err)
	}
}

func TestParseRecordsSkipsBlankLines(t *testing.T) {
	records := []Record{
		{
			Name:  "Algebra",
			Times: "\nMATH171 HM-1 (Su): MWF 9:00 - 9:50 AM; Claremont, Shanahan, 3461\n\n",
		},
	}

	sections, err := ParseRecords(records)
	if err != nil {
		t.Fatalf("ParseRecords failed: %v", err)
	}
	if len(sections) != 1 {
		t.Errorf("expected blank lines to be skipped, got %d sections", len(sections))
	}
}

func TestParseRecordsEmptyRecord(t *testing.T) {
	// A record whose blob has no section lines at all is a corrupt dump.
	_, err := ParseRecords([]Record{{Name: "Ghost Course", Times: "\n  \n"}})
	var lineErr *MalformedLineError
	if !errors.As(err, &lineErr) {
		t.Errorf("expected *MalformedLineError for an empty record, got %v", err)
	}
}

func TestParseCatalogJSON(t *testing.T) {
	input := `[
		{"name": "Introduction to Computer Science",
		 "times": "CSCI5 HM-1 (Smith): MWF 10:00 - 10:50 AM; Claremont, Platt, 101"}
	]`

	sections, err := ParseCatalog(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCatalog failed: %v", err)
	}
	if len(sections) != 1 || sections[0].Reference() != "CSCI 5 HM-1" {
		t.Errorf("unexpected parse result: %+v", sections)
	}

	if _, err := ParseCatalog(strings.NewReader("not json")); err == nil {
		t.Errorf("expected an error for invalid JSON")
	}
}
