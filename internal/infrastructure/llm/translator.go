package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"syscall"

	openai "github.com/sashabaranov/go-openai"

	"WeeklyPapers/internal/config"
	"WeeklyPapers/internal/ports"
	"WeeklyPapers/internal/retry"
)

const (
	msgNothingToTranslate = "nothing to translate"
	msgNotConfigured      = "translation skipped: OpenAI client is not configured"

	userPromptPrefix = "Translate the following English text to Korean:\n\n"
)

// Translator sends abstracts to the OpenAI chat-completion API. It never
// returns an error: the result is either the translation or a message
// explaining the failure, so one broken translation cannot sink a run.
type Translator struct {
	client       *openai.Client
	model        string
	systemPrompt string
	temperature  float32
	policy       retry.Policy
	logger       *slog.Logger
}

var _ ports.Translator = (*Translator)(nil)

// NewTranslator builds a client from configuration. An empty API key yields
// an unconfigured translator that answers every call with a fixed message.
func NewTranslator(cfg config.TranslatorConfig, logger *slog.Logger) *Translator {
	var client *openai.Client
	if cfg.APIKey != "" {
		clientCfg := openai.DefaultConfig(cfg.APIKey)
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout()}
		client = openai.NewClientWithConfig(clientCfg)
	}

	return &Translator{
		client:       client,
		model:        cfg.Model,
		systemPrompt: cfg.SystemPrompt,
		temperature:  cfg.Temperature,
		policy: retry.Policy{
			MaxAttempts: cfg.MaxAttempts,
			BaseDelay:   cfg.BaseDelay(),
			Multiplier:  2,
			Retryable:   isConnectivityError,
		},
		logger: logger,
	}
}

// Translate submits the text and returns the trimmed completion. Transient
// connectivity failures are retried with doubling backoff; any other failure
// is reported immediately in the returned message.
func (t *Translator) Translate(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return msgNothingToTranslate
	}
	if t.client == nil {
		return msgNotConfigured
	}

	var result string
	err := t.policy.Do(ctx, func() error {
		resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       t.model,
			Temperature: t.temperature,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: t.systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPromptPrefix + text},
			},
		})
		if err != nil {
			t.warn("translation attempt failed", "error", err)
			return err
		}
		if len(resp.Choices) == 0 {
			return errors.New("completion response has no choices")
		}
		result = strings.TrimSpace(resp.Choices[0].Message.Content)
		return nil
	})
	if err == nil {
		return result
	}

	if isConnectivityError(err) {
		return fmt.Sprintf("translation failed: no network connectivity after %d attempts", t.policy.MaxAttempts)
	}
	return fmt.Sprintf("unexpected translation error: %v", err)
}

// isConnectivityError separates retry-worthy transport failures from
// everything else. An API-level response (auth failure, bad request, rate
// limit) reached the server and is never retried.
func isConnectivityError(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return false
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	// Covers *net.OpError, *url.Error transport wrappers, and timeouts.
	var netErr net.Error
	return errors.As(err, &netErr)
}

func (t *Translator) warn(msg string, args ...any) {
	if t.logger != nil {
		t.logger.Warn(msg, args...)
	}
}
