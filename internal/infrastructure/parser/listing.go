package parser

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"WeeklyPapers/internal/config"
	"WeeklyPapers/internal/domain"
	"WeeklyPapers/internal/ports"
)

// ListingFetcher scrapes the weekly top-papers page and extracts entries
// in document order, up to the configured cap.
type ListingFetcher struct {
	client    *http.Client
	baseURL   string
	maxPapers int
	selectors config.SelectorConfig
	logger    *slog.Logger
}

var _ ports.ListingSource = (*ListingFetcher)(nil)

// NewListingFetcher wires an HTTP client; a nil client gets the configured timeout.
func NewListingFetcher(client *http.Client, cfg config.SourceConfig, logger *slog.Logger) *ListingFetcher {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout()}
	}
	return &ListingFetcher{
		client:    client,
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		maxPapers: cfg.MaxPapers,
		selectors: cfg.Selectors,
		logger:    logger,
	}
}

// ListingURL builds the deterministic weekly listing URL.
func (f *ListingFetcher) ListingURL(week domain.Week) string {
	return fmt.Sprintf("%s/papers/week/%s", f.baseURL, week)
}

// FetchListing retrieves and parses the listing page. A transport or HTTP
// failure is returned as an error; a page without article nodes yields an
// empty slice. An article missing its title or link becomes an error-entry
// at its rank and extraction continues with the next article.
func (f *ListingFetcher) FetchListing(ctx context.Context, week domain.Week) ([]domain.Paper, error) {
	pageURL := f.ListingURL(week)

	doc, err := fetchDocument(ctx, f.client, pageURL)
	if err != nil {
		return nil, fmt.Errorf("listing page: %w", err)
	}

	papers := make([]domain.Paper, 0, f.maxPapers)
	doc.Find(f.selectors.Article).EachWithBreak(func(i int, article *goquery.Selection) bool {
		if len(papers) >= f.maxPapers {
			return false
		}

		paper := domain.Paper{Rank: len(papers) + 1}
		title, href, err := f.extractHeading(article)
		if err != nil {
			paper.Err = err.Error()
			f.debug("heading extraction failed", "rank", paper.Rank, "error", err)
		} else {
			paper.Title = title
			paper.URL = f.absoluteURL(href)
		}

		papers = append(papers, paper)
		return true
	})

	f.debug("listing extracted", "week", week.String(), "count", len(papers))
	return papers, nil
}

func (f *ListingFetcher) extractHeading(article *goquery.Selection) (string, string, error) {
	link := article.Find(f.selectors.Heading).First()
	if link.Length() == 0 {
		return "", "", fmt.Errorf("article has no heading link")
	}

	// goquery joins all text fragments under the anchor.
	title := strings.TrimSpace(link.Text())
	href, ok := link.Attr("href")
	if title == "" || !ok || href == "" {
		return "", "", fmt.Errorf("article heading is missing title or link")
	}

	return title, href, nil
}

func (f *ListingFetcher) absoluteURL(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return f.baseURL + href
}

func (f *ListingFetcher) debug(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}
