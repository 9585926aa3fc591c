package domain

import (
	"fmt"
	"time"
)

// Week identifies an ISO-8601 year/week pair.
type Week struct {
	Year int
	Week int
}

// PreviousWeek returns the ISO week that now-7d falls into.
func PreviousWeek(now time.Time) Week {
	year, week := now.AddDate(0, 0, -7).ISOWeek()
	return Week{Year: year, Week: week}
}

// String renders the week the way listing URLs expect it, e.g. "2026-W34".
func (w Week) String() string {
	return fmt.Sprintf("%d-W%02d", w.Year, w.Week)
}

// Paper is a core entity describing one article scraped from the weekly listing.
type Paper struct {
	Rank        int
	Title       string
	URL         string
	Abstract    string
	Translation string
	Err         string
}

// Failed reports whether the entry errored during scraping or processing.
func (p Paper) Failed() bool {
	return p.Err != ""
}

// Report aggregates all papers of one run; it lives only until it is flushed to disk.
type Report struct {
	Week      Week
	SourceURL string
	Papers    []Paper
}
