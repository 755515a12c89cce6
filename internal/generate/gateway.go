package generate

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/relaunch-ai/relaunch-cli/internal/resilience"
	"github.com/relaunch-ai/relaunch-cli/internal/synth"
	"github.com/relaunch-ai/relaunch-cli/pkg/deployai"
)

// Gateway fronts a real backend with the fallback synthesizer. With no
// backend configured it synthesizes directly; otherwise it tries the backend
// with one transient-error retry and synthesizes on any failure. Generate
// never returns a non-nil error, so stage functions always get text.
type Gateway struct {
	backend Generator
	synth   *synth.Synthesizer
	retry   resilience.RetryConfig
}

// NewGateway builds a Gateway. backend may be nil.
func NewGateway(backend Generator, s *synth.Synthesizer) *Gateway {
	retry := resilience.DefaultRetryConfig()
	retry.ShouldRetry = retryable
	return &Gateway{
		backend: backend,
		synth:   s,
		retry:   retry,
	}
}

// Generate returns backend text when possible, synthesized text otherwise.
func (g *Gateway) Generate(ctx context.Context, req Request) (string, error) {
	if g.backend == nil {
		return g.synth.Synthesize(req.Stage, req.Role, req.Content), nil
	}

	var text string
	err := resilience.Do(ctx, g.retry, func(ctx context.Context) error {
		var genErr error
		text, genErr = g.backend.Generate(ctx, req)
		return genErr
	})
	if err != nil {
		zap.L().Warn("generate: backend failed, synthesizing",
			zap.String("stage", string(req.Stage)),
			zap.Error(err),
		)
		return g.synth.Synthesize(req.Stage, req.Role, req.Content), nil
	}
	return text, nil
}

// retryable extends the transient check with Deploy AI status codes.
func retryable(err error) bool {
	var se *deployai.StatusError
	if errors.As(err, &se) {
		return resilience.IsTransientHTTPStatus(se.StatusCode)
	}
	return resilience.IsTransient(err)
}
