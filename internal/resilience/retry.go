// Package resilience provides the retry policy used around outbound
// generation calls.
package resilience

import (
	"context"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// RetryConfig controls retry behavior with exponential backoff and jitter.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts including the first try.
	// A value of 1 means no retries. Default: 2.
	MaxAttempts int

	// InitialBackoff is the delay before the first retry. Default: 500ms.
	InitialBackoff time.Duration

	// Multiplier scales the backoff after each attempt. Default: 2.0.
	Multiplier float64

	// ShouldRetry overrides the default transient-error check when set.
	ShouldRetry func(err error) bool
}

// DefaultRetryConfig returns the gateway's policy: one retry on transient
// failure, then fall back.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    2,
		InitialBackoff: 500 * time.Millisecond,
		Multiplier:     2.0,
	}
}

// Do executes fn, retrying transient errors per cfg. Context cancellation
// stops retries immediately.
func Do(ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) error) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 2
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 500 * time.Millisecond
	}
	if cfg.Multiplier <= 0 {
		cfg.Multiplier = 2.0
	}
	shouldRetry := cfg.ShouldRetry
	if shouldRetry == nil {
		shouldRetry = IsTransient
	}

	backoff := cfg.InitialBackoff
	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil || !shouldRetry(lastErr) || attempt == cfg.MaxAttempts {
			return lastErr
		}

		// ±25% jitter.
		sleep := time.Duration(float64(backoff) * (0.75 + rand.Float64()*0.5))
		zap.L().Debug("resilience: retrying",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", sleep),
			zap.Error(lastErr),
		)
		select {
		case <-ctx.Done():
			return lastErr
		case <-time.After(sleep):
		}
		backoff = time.Duration(float64(backoff) * cfg.Multiplier)
	}
	return lastErr
}
