package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"WeeklyPapers/internal/app"
	"WeeklyPapers/internal/config"
	"WeeklyPapers/internal/logging"
)

func main() {
	ctx := context.Background()

	// Missing .env is fine; the environment alone may carry the key.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	if cfg.Translator.APIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set; abstracts will not be translated")
	}

	application := app.New(cfg, logger)

	if err := application.Run(ctx); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}
