package generate

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/relaunch-ai/relaunch-cli/pkg/anthropic"
)

// AnthropicBackend generates stage text with the Anthropic Messages API.
// The role becomes the system prompt and the content the single user turn.
type AnthropicBackend struct {
	client anthropic.Client
	model  string
}

// NewAnthropicBackend wraps an Anthropic client as a Generator. An empty
// model falls back to the package default.
func NewAnthropicBackend(client anthropic.Client, model string) *AnthropicBackend {
	return &AnthropicBackend{client: client, model: model}
}

// Generate sends one message and returns the first text block of the reply.
func (b *AnthropicBackend) Generate(ctx context.Context, req Request) (string, error) {
	resp, err := b.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:  b.model,
		System: req.Role,
		Messages: []anthropic.Message{
			{Role: "user", Content: req.Content},
		},
	})
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", eris.New("generate: anthropic reply has no text block")
	}
	return text, nil
}
