package scraper

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/raxod502/hyposchedule/pkg/catalog"
)

// ParsePortal extracts catalog records from the portal's course listing
// HTML. Each course row carries the course title and the raw section/time
// lines that the catalog parser understands.
func ParsePortal(r io.Reader) ([]catalog.Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var records []catalog.Record

	// Each course lives in a tr.course-row with a name cell and a times
	// cell; section lines inside the times cell are separated by <br>.
	doc.Find("table#course-schedule tr.course-row").Each(func(i int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.Find("td.course-name").Text())

		timesCell := sel.Find("td.course-times")
		html, err := timesCell.Html()
		if err != nil {
			return
		}
		times := htmlLinesToText(html)

		if name != "" && strings.TrimSpace(times) != "" {
			records = append(records, catalog.Record{
				Name:  name,
				Times: times,
			})
		}
	})

	return records, nil
}

// FetchCatalog downloads and parses the full course listing, going through
// the on-disk cache first.
func (c *Client) FetchCatalog() ([]catalog.Record, error) {
	if cached, ok := readCache(c.baseURL); ok {
		return cached, nil
	}

	resp, err := c.Get("courses.html")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	records, err := ParsePortal(resp.Body)
	if err != nil {
		return nil, err
	}

	writeCache(c.baseURL, records)
	return records, nil
}

// htmlLinesToText turns the times cell markup into the newline-separated
// plain text the catalog parser expects, treating <br> as a line break.
func htmlLinesToText(html string) string {
	replacer := strings.NewReplacer("<br>", "\n", "<br/>", "\n", "<br />", "\n")
	text := replacer.Replace(html)

	// Strip any remaining tags by re-parsing the fragment as text
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return text
	}

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
