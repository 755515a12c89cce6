package generate

import (
	"context"
	"fmt"

	"github.com/relaunch-ai/relaunch-cli/pkg/deployai"
)

// DeployBackend generates text through the Deploy AI chat API: token, chat,
// message. Each call opens a fresh conversation; the pipeline's prompts are
// self-contained, so no chat state is reused.
type DeployBackend struct {
	client deployai.Client
}

// NewDeployBackend wraps a Deploy AI client as a Generator.
func NewDeployBackend(client deployai.Client) *DeployBackend {
	return &DeployBackend{client: client}
}

// Generate runs the three-leg exchange. The role travels inside the message
// body; the API has no separate system-prompt slot.
func (b *DeployBackend) Generate(ctx context.Context, req Request) (string, error) {
	token, err := b.client.Token(ctx)
	if err != nil {
		return "", err
	}
	chatID, err := b.client.CreateChat(ctx, token)
	if err != nil {
		return "", err
	}
	prompt := fmt.Sprintf("SYSTEM:\n%s\n\nUSER:\n%s", req.Role, req.Content)
	return b.client.SendMessage(ctx, token, chatID, prompt)
}
