package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"WeeklyPapers/internal/domain"
)

type fakeSource struct {
	papers []domain.Paper
	err    error
}

func (f *fakeSource) ListingURL(week domain.Week) string {
	return "https://example.org/papers/week/" + week.String()
}

func (f *fakeSource) FetchListing(_ context.Context, _ domain.Week) ([]domain.Paper, error) {
	return f.papers, f.err
}

type fakeAbstracts struct {
	byURL map[string]string
	fails map[string]error
}

func (f *fakeAbstracts) FetchAbstract(_ context.Context, paperURL string) (string, error) {
	if err, ok := f.fails[paperURL]; ok {
		return "", err
	}
	return f.byURL[paperURL], nil
}

type fakeTranslator struct {
	calls int
}

func (f *fakeTranslator) Translate(_ context.Context, text string) string {
	f.calls++
	return "[ko] " + text
}

type fakeWriter struct {
	report  *domain.Report
	path    string
	err     error
	written int
}

func (f *fakeWriter) Write(report domain.Report) (string, error) {
	f.written++
	f.report = &report
	return f.path, f.err
}

func newTestPipeline(source *fakeSource, abstracts *fakeAbstracts, writer *fakeWriter) (*Pipeline, *fakeTranslator) {
	translator := &fakeTranslator{}
	return NewPipeline(PipelineDeps{
		Source:     source,
		Abstracts:  abstracts,
		Translator: translator,
		Writer:     writer,
	}), translator
}

func TestProcessWeekIsolatesEntryFailures(t *testing.T) {
	t.Parallel()

	source := &fakeSource{papers: []domain.Paper{
		{Rank: 1, Title: "First", URL: "u1"},
		{Rank: 2, Title: "Second", URL: "u2"},
		{Rank: 3, Title: "Third", URL: "u3"},
	}}
	abstracts := &fakeAbstracts{
		byURL: map[string]string{"u1": "abstract one", "u3": "abstract three"},
		fails: map[string]error{"u2": errors.New("connection reset")},
	}
	writer := &fakeWriter{path: "out.txt"}

	pipeline, translator := newTestPipeline(source, abstracts, writer)

	err := pipeline.ProcessWeek(context.Background(), time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, writer.report)

	papers := writer.report.Papers
	require.Len(t, papers, 3)

	assert.Equal(t, "abstract one", papers[0].Abstract)
	assert.Equal(t, "[ko] abstract one", papers[0].Translation)

	assert.True(t, papers[1].Failed())
	assert.Contains(t, papers[1].Err, "connection reset")

	// The failure at rank 2 must not stop rank 3.
	assert.Equal(t, "abstract three", papers[2].Abstract)
	assert.Equal(t, "[ko] abstract three", papers[2].Translation)

	assert.Equal(t, 2, translator.calls)
}

func TestProcessWeekSkipsListingErrorEntries(t *testing.T) {
	t.Parallel()

	source := &fakeSource{papers: []domain.Paper{
		{Rank: 1, Err: "article heading is missing title or link"},
		{Rank: 2, Title: "Second", URL: "u2"},
	}}
	abstracts := &fakeAbstracts{byURL: map[string]string{"u2": "abstract two"}}
	writer := &fakeWriter{}

	pipeline, translator := newTestPipeline(source, abstracts, writer)

	require.NoError(t, pipeline.ProcessWeek(context.Background(), time.Now()))
	require.NotNil(t, writer.report)

	assert.True(t, writer.report.Papers[0].Failed())
	assert.Equal(t, "[ko] abstract two", writer.report.Papers[1].Translation)
	assert.Equal(t, 1, translator.calls)
}

func TestProcessWeekAbsentAbstractIsNotAnError(t *testing.T) {
	t.Parallel()

	source := &fakeSource{papers: []domain.Paper{{Rank: 1, Title: "First", URL: "u1"}}}
	abstracts := &fakeAbstracts{}
	writer := &fakeWriter{}

	pipeline, translator := newTestPipeline(source, abstracts, writer)

	require.NoError(t, pipeline.ProcessWeek(context.Background(), time.Now()))
	require.NotNil(t, writer.report)

	paper := writer.report.Papers[0]
	assert.False(t, paper.Failed())
	assert.Empty(t, paper.Abstract)
	assert.Empty(t, paper.Translation)
	assert.Zero(t, translator.calls)
}

func TestProcessWeekEmptyListingWritesNothing(t *testing.T) {
	t.Parallel()

	writer := &fakeWriter{}
	pipeline, _ := newTestPipeline(&fakeSource{}, &fakeAbstracts{}, writer)

	require.NoError(t, pipeline.ProcessWeek(context.Background(), time.Now()))
	assert.Zero(t, writer.written, "empty listing must not produce a report file")
}

func TestProcessWeekListingFailureIsFatal(t *testing.T) {
	t.Parallel()

	writer := &fakeWriter{}
	pipeline, _ := newTestPipeline(&fakeSource{err: errors.New("503 Service Unavailable")}, &fakeAbstracts{}, writer)

	err := pipeline.ProcessWeek(context.Background(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch listing")
	assert.Zero(t, writer.written)
}

func TestProcessWeekWriteFailureIsFatal(t *testing.T) {
	t.Parallel()

	source := &fakeSource{papers: []domain.Paper{{Rank: 1, Title: "First", URL: "u1"}}}
	writer := &fakeWriter{err: fmt.Errorf("create report file: permission denied")}

	pipeline, _ := newTestPipeline(source, &fakeAbstracts{}, writer)

	err := pipeline.ProcessWeek(context.Background(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write report")
}

func TestProcessWeekResolvesPreviousWeek(t *testing.T) {
	t.Parallel()

	source := &fakeSource{papers: []domain.Paper{{Rank: 1, Title: "First", URL: "u1"}}}
	abstracts := &fakeAbstracts{byURL: map[string]string{"u1": "a"}}
	writer := &fakeWriter{}

	pipeline, _ := newTestPipeline(source, abstracts, writer)

	now := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)
	require.NoError(t, pipeline.ProcessWeek(context.Background(), now))
	require.NotNil(t, writer.report)

	assert.Equal(t, domain.Week{Year: 2026, Week: 9}, writer.report.Week)
	assert.Equal(t, "https://example.org/papers/week/2026-W09", writer.report.SourceURL)
}
