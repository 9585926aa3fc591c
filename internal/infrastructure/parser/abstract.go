package parser

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"WeeklyPapers/internal/config"
	"WeeklyPapers/internal/ports"
)

// AbstractFetcher loads a single paper page and extracts its abstract text.
type AbstractFetcher struct {
	client   *http.Client
	selector string
	logger   *slog.Logger
}

var _ ports.AbstractFetcher = (*AbstractFetcher)(nil)

// NewAbstractFetcher wires an HTTP client; a nil client gets the configured timeout.
func NewAbstractFetcher(client *http.Client, cfg config.SourceConfig, logger *slog.Logger) *AbstractFetcher {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout()}
	}
	return &AbstractFetcher{
		client:   client,
		selector: cfg.Selectors.Abstract,
		logger:   logger,
	}
}

// FetchAbstract returns the trimmed text of the first abstract paragraph,
// or an empty string when the page has no matching node. Transport and HTTP
// failures are errors for the caller to record against the entry.
func (f *AbstractFetcher) FetchAbstract(ctx context.Context, paperURL string) (string, error) {
	doc, err := fetchDocument(ctx, f.client, paperURL)
	if err != nil {
		return "", fmt.Errorf("paper page: %w", err)
	}

	node := doc.Find(f.selector).First()
	if node.Length() == 0 {
		if f.logger != nil {
			f.logger.Debug("abstract node not found", "url", paperURL)
		}
		return "", nil
	}

	return strings.TrimSpace(node.Text()), nil
}
