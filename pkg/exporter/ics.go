package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/raxod502/hyposchedule/pkg/catalog"
)

// weekdayFor maps the catalog's day letters onto Go weekdays. R is Thursday.
var weekdayFor = map[byte]time.Weekday{
	'M': time.Monday,
	'T': time.Tuesday,
	'W': time.Wednesday,
	'R': time.Thursday,
	'F': time.Friday,
}

// GenerateICS expands the weekly meetings of the given sections over a
// semester and writes the calendar to w. semesterStart anchors the first
// week; weeks is how many weeks to generate. Each meeting day becomes its
// own event rather than a recurrence rule, so calendar apps that mangle
// RRULEs still import cleanly.
func GenerateICS(sections []catalog.Section, semesterStart time.Time, weeks int, w io.Writer) error {
	if weeks < 1 {
		return fmt.Errorf("semester length must be at least one week, got %d", weeks)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	titler := cases.Title(language.English)
	now := time.Now()

	for _, section := range sections {
		for mi, meeting := range section.Meetings {
			block := meeting.Block
			for di := 0; di < len(block.Days); di++ {
				day := block.Days[di]
				first := firstOnOrAfter(semesterStart, weekdayFor[day])

				for week := 0; week < weeks; week++ {
					date := first.AddDate(0, 0, 7*week)
					start := time.Date(date.Year(), date.Month(), date.Day(),
						block.Begin.Hour, block.Begin.Minute, 0, 0, semesterStart.Location())
					end := time.Date(date.Year(), date.Month(), date.Day(),
						block.End.Hour, block.End.Minute, 0, 0, semesterStart.Location())

					uid := fmt.Sprintf("%s-%s-%d-%d-%c%d",
						strings.ToLower(section.Department), strings.ToLower(section.CourseCode),
						section.SectionNumber, mi, day, week)

					event := cal.AddEvent(uid)
					event.SetCreatedTime(now)
					event.SetDtStampTime(now)
					event.SetModifiedAt(now)
					event.SetStartAt(start)
					event.SetEndAt(end)
					event.SetSummary(fmt.Sprintf("%s %s", section.Reference(), section.CourseName))
					event.SetLocation(fmt.Sprintf("%s %s, %s",
						meeting.Building, meeting.Room, titler.String(strings.ToLower(meeting.Campus))))

					description := fmt.Sprintf("Instructor: %s", section.Instructor)
					if len(section.Meetings) > 1 {
						description += fmt.Sprintf("\nMeeting %d of %d", mi+1, len(section.Meetings))
					}
					event.SetDescription(description)
				}
			}
		}
	}

	return cal.SerializeTo(w)
}

// firstOnOrAfter returns the first date with the given weekday that is not
// before start.
func firstOnOrAfter(start time.Time, weekday time.Weekday) time.Time {
	offset := (int(weekday) - int(start.Weekday()) + 7) % 7
	return start.AddDate(0, 0, offset)
}
