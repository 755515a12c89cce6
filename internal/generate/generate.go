// Package generate produces stage text, either from a remote chat backend
// or from the deterministic fallback synthesizer. The gateway in this
// package is the pipeline's resilience boundary: it never returns an error,
// so the pipeline is runnable with zero network dependencies.
package generate

import (
	"context"

	"github.com/relaunch-ai/relaunch-cli/internal/model"
)

// Request carries one stage's generation inputs. Stage is the dispatch key;
// Role is the natural-language system prompt sent to real backends.
type Request struct {
	Stage   model.Stage
	Role    string
	Content string
}

// Generator produces the raw text for one stage.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Func adapts a function to the Generator interface.
type Func func(ctx context.Context, req Request) (string, error)

// Generate implements Generator.
func (f Func) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
