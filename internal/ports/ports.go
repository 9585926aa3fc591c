package ports

import (
	"context"

	"WeeklyPapers/internal/domain"
)

// ListingSource pulls the weekly paper listing from the upstream site.
type ListingSource interface {
	ListingURL(week domain.Week) string
	FetchListing(ctx context.Context, week domain.Week) ([]domain.Paper, error)
}

// AbstractFetcher retrieves the abstract text from a single paper page.
// An empty string with nil error means the page has no abstract node.
type AbstractFetcher interface {
	FetchAbstract(ctx context.Context, paperURL string) (string, error)
}

// Translator turns English abstracts into the target language. It never
// fails past its boundary: the result is either the translation or a
// human-readable message explaining why no translation was produced.
type Translator interface {
	Translate(ctx context.Context, text string) string
}

// ReportWriter flushes the aggregated report to its output artifact and
// returns the written path.
type ReportWriter interface {
	Write(report domain.Report) (string, error)
}
