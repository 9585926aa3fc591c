package app

import (
	"context"
	"log/slog"
	"time"

	"WeeklyPapers/internal/config"
	"WeeklyPapers/internal/infrastructure/llm"
	"WeeklyPapers/internal/infrastructure/parser"
	"WeeklyPapers/internal/infrastructure/report"
	"WeeklyPapers/internal/logging"
	"WeeklyPapers/internal/usecase"
)

// Application wires configuration to the pipeline use case.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	source := parser.NewListingFetcher(nil, cfg.Source, baseLogger.With("component", "parser.listing"))
	abstracts := parser.NewAbstractFetcher(nil, cfg.Source, baseLogger.With("component", "parser.abstract"))
	translator := llm.NewTranslator(cfg.Translator, baseLogger.With("component", "translator"))
	writer := report.NewWriter(cfg.Report.Dir, baseLogger.With("component", "report"))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:     source,
		Abstracts:  abstracts,
		Translator: translator,
		Writer:     writer,
		Logger:     baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, pipeline: pipeline}
}

// Run executes a single weekly run for the current wall-clock time.
func (a *Application) Run(ctx context.Context) error {
	if a.pipeline == nil {
		return nil
	}

	return a.pipeline.ProcessWeek(ctx, time.Now())
}
