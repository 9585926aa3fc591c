// Package retry provides a bounded exponential-backoff loop with a
// caller-supplied predicate deciding which errors are worth retrying.
package retry

import (
	"context"
	"time"
)

// Policy parameterizes the retry loop. The zero value performs a single
// attempt with no sleeping.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64

	// Retryable decides whether an error deserves another attempt.
	// Nil means every error is retried until MaxAttempts.
	Retryable func(error) bool

	// Sleep is overridable so tests can observe delays without real timers.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Do invokes fn up to MaxAttempts times. A non-retryable error is returned
// immediately; on exhaustion the last error is returned. Between attempts
// the delay starts at BaseDelay and grows by Multiplier.
func (p Policy) Do(ctx context.Context, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	delay := p.BaseDelay
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		if attempt == attempts {
			break
		}
		if sleepErr := p.sleep(ctx, delay); sleepErr != nil {
			return sleepErr
		}
		delay = time.Duration(float64(delay) * p.multiplier())
	}

	return err
}

func (p Policy) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, d)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func (p Policy) multiplier() float64 {
	if p.Multiplier <= 0 {
		return 2
	}
	return p.Multiplier
}
