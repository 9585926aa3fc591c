package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"WeeklyPapers/internal/domain"
	"WeeklyPapers/internal/ports"
)

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Source     ports.ListingSource
	Abstracts  ports.AbstractFetcher
	Translator ports.Translator
	Writer     ports.ReportWriter
	Logger     *slog.Logger
}

// Pipeline implements the weekly scrape-translate-report workflow.
type Pipeline struct {
	source     ports.ListingSource
	abstracts  ports.AbstractFetcher
	translator ports.Translator
	writer     ports.ReportWriter
	logger     *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:     deps.Source,
		abstracts:  deps.Abstracts,
		translator: deps.Translator,
		writer:     deps.Writer,
		logger:     deps.Logger,
	}
}

// ProcessWeek resolves last week, fetches its listing, processes every entry
// in document order, and writes the report. A listing or write failure is
// fatal; any failure inside a single entry is recorded on that entry and the
// remaining entries are still processed.
func (p *Pipeline) ProcessWeek(ctx context.Context, now time.Time) error {
	if p.source == nil {
		return nil
	}

	week := domain.PreviousWeek(now)
	sourceURL := p.source.ListingURL(week)
	p.info("fetching weekly listing", "week", week.String(), "url", sourceURL)

	papers, err := p.source.FetchListing(ctx, week)
	if err != nil {
		return fmt.Errorf("fetch listing: %w", err)
	}

	if len(papers) == 0 {
		p.info("no papers found", "week", week.String())
		return nil
	}
	p.info("papers found", "count", len(papers))

	for i := range papers {
		p.processEntry(ctx, &papers[i], len(papers))
	}

	if p.writer == nil {
		return nil
	}

	path, err := p.writer.Write(domain.Report{Week: week, SourceURL: sourceURL, Papers: papers})
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	p.info("report written", "path", path)
	return nil
}

func (p *Pipeline) processEntry(ctx context.Context, paper *domain.Paper, total int) {
	// Listing extraction already failed this entry; nothing left to fetch.
	if paper.Failed() || p.abstracts == nil {
		return
	}

	p.info("processing paper", "rank", paper.Rank, "total", total, "title", paper.Title)

	abstract, err := p.abstracts.FetchAbstract(ctx, paper.URL)
	if err != nil {
		paper.Err = fmt.Sprintf("entry processing failed: %v", err)
		p.warn("entry failed", "rank", paper.Rank, "error", err)
		return
	}
	if abstract == "" {
		p.info("abstract not found", "rank", paper.Rank, "url", paper.URL)
		return
	}

	paper.Abstract = abstract
	if p.translator != nil {
		paper.Translation = p.translator.Translate(ctx, abstract)
	}
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
