package scraper

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/civicdocs/meeting-docs/internal/meeting"
)

const (
	// rowSelector matches the odd/even table rows the listing renders one
	// meeting into.
	rowSelector = "tr.odd, tr.even"

	titleSelector = ".views-field-title"
	dateSelector  = ".views-field-field-calendar-date .date-display-single"
)

// labelSelectors locates the anchor for each document category inside a row.
var labelSelectors = map[meeting.Label]string{
	meeting.LabelAgenda:       ".views-field-field-agendas a[href]",
	meeting.LabelPackage:      ".views-field-field-packets a[href]",
	meeting.LabelActionReport: ".views-field-field-action-reports a[href]",
	meeting.LabelMinutes:      ".views-field-field-minutes a[href]",
	meeting.LabelCOADReport:   ".views-field-field-other-meeting-attachments a[href]",
}

// ParseMeetings extracts all meeting rows from a rendered listing page.
// origin is the scheme://host prefix used to resolve relative document
// hrefs. A page with no rows yields an empty slice and no error.
func ParseMeetings(r io.Reader, origin string) ([]*meeting.Meeting, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	meetings := make([]*meeting.Meeting, 0)

	doc.Find(rowSelector).Each(func(i int, row *goquery.Selection) {
		m := meeting.NewMeeting(
			row.Find(titleSelector).First().Text(),
			row.Find(dateSelector).First().Text(),
		)

		for _, label := range meeting.Labels() {
			href, ok := row.Find(labelSelectors[label]).First().Attr("href")
			if !ok {
				continue
			}
			href = strings.TrimSpace(href)
			if href == "" {
				continue
			}
			m.Documents[label] = resolveHref(origin, href)
		}

		meetings = append(meetings, m)
	})

	return meetings, nil
}

// resolveHref makes a document href absolute. Absolute hrefs are passed
// through byte-for-byte so the CSV records the URL exactly as published.
func resolveHref(origin, href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return strings.TrimSuffix(origin, "/") + href
}
