package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SucceedsFirstTry(t *testing.T) {
	calls := 0
	err := Do(context.Background(), RetryConfig{MaxAttempts: 3, InitialBackoff: time.Millisecond}, func(ctx context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesTransientThenSucceeds(t *testing.T) {
	calls := 0
	err := Do(context.Background(), RetryConfig{MaxAttempts: 3, InitialBackoff: time.Millisecond}, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return NewTransientError(errors.New("flaky"), 0)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_StopsOnPermanentError(t *testing.T) {
	permanent := errors.New("bad request")
	calls := 0
	err := Do(context.Background(), RetryConfig{MaxAttempts: 3, InitialBackoff: time.Millisecond}, func(ctx context.Context) error {
		calls++
		return permanent
	})
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := Do(context.Background(), RetryConfig{MaxAttempts: 2, InitialBackoff: time.Millisecond}, func(ctx context.Context) error {
		calls++
		return NewTransientError(errors.New("still down"), 503)
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestDo_CustomShouldRetry(t *testing.T) {
	special := errors.New("special")
	calls := 0
	cfg := RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		ShouldRetry:    func(err error) bool { return errors.Is(err, special) },
	}
	err := Do(context.Background(), cfg, func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return special
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDo_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Do(ctx, RetryConfig{MaxAttempts: 5, InitialBackoff: time.Millisecond}, func(ctx context.Context) error {
		calls++
		cancel()
		return NewTransientError(errors.New("flaky"), 0)
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(NewTransientError(errors.New("x"), 0)))
	assert.False(t, IsTransient(errors.New("x")))
	assert.False(t, IsTransient(nil))
}

func TestIsTransientHTTPStatus(t *testing.T) {
	for _, code := range []int{408, 429, 500, 502, 503, 504} {
		assert.True(t, IsTransientHTTPStatus(code), "status %d", code)
	}
	for _, code := range []int{200, 201, 301, 400, 401, 403, 404, 422} {
		assert.False(t, IsTransientHTTPStatus(code), "status %d", code)
	}
}
