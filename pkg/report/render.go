// Package report renders the grouped schedule as a terminal report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/raxod502/hyposchedule/pkg/planner"
)

// Options controls optional report detail.
type Options struct {
	// Locations adds a meeting-location line under each entry.
	Locations bool
	// AccentColor overrides the default header color.
	AccentColor string
}

// FormatBlockHeader renders a group header, e.g.
// "MWF from 10:00 AM to 10:50 AM".
func FormatBlockHeader(g planner.BlockGroup) string {
	return g.Block.String()
}

// FormatEntry renders one section-meeting line, e.g.
// "CSCI 005 HM-01 Introduction to Computer Science [1/2]". The course code
// pads to three digits and the section number to two; the index marker
// appears only for sections with several meetings.
func FormatEntry(e planner.Entry) string {
	s := e.Section
	line := fmt.Sprintf("%s %s %s-%02d %s",
		s.Department, zeroPad(s.CourseCode, 3), s.School, s.SectionNumber, s.CourseName)
	if e.Total > 1 {
		line += fmt.Sprintf(" [%d/%d]", e.Index+1, e.Total)
	}
	return line
}

// FormatLocation renders the meeting location, e.g. "Platt 101, Claremont".
func FormatLocation(e planner.Entry) string {
	m := e.Meeting
	campus := cases.Title(language.English).String(strings.ToLower(m.Campus))
	return fmt.Sprintf("%s %s, %s", m.Building, m.Room, campus)
}

// Render writes the grouped schedule report to w: one header per meeting
// block in ascending order, then one line per section meeting in the block.
func Render(w io.Writer, groups []planner.BlockGroup, opts Options) {
	accent := "99"
	if opts.AccentColor != "" {
		accent = opts.AccentColor
	}

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true)
	locationStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	if len(groups) == 0 {
		fmt.Fprintln(w, "No sections to report.")
		return
	}

	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, headerStyle.Render(FormatBlockHeader(g)))
		for _, e := range g.Entries {
			fmt.Fprintln(w, FormatEntry(e))
			if opts.Locations {
				fmt.Fprintf(w, "  %s\n", locationStyle.Render(FormatLocation(e)))
			}
		}
	}
}

// zeroPad left-pads s with zeros to at least width characters. Course codes
// are alphanumeric, so this is not a plain %0*d.
func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
