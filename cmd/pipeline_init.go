package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/relaunch-ai/relaunch-cli/internal/generate"
	"github.com/relaunch-ai/relaunch-cli/internal/pipeline"
	"github.com/relaunch-ai/relaunch-cli/internal/render"
	"github.com/relaunch-ai/relaunch-cli/internal/store"
	"github.com/relaunch-ai/relaunch-cli/internal/synth"
	anthropicpkg "github.com/relaunch-ai/relaunch-cli/pkg/anthropic"
	"github.com/relaunch-ai/relaunch-cli/pkg/deployai"
)

// pipelineEnv holds the initialized store and pipeline needed by the
// analyse/batch/serve commands.
type pipelineEnv struct {
	Store    store.Store
	Pipeline *pipeline.Pipeline
	Year     int
}

// Close releases resources held by the pipeline environment.
func (pe *pipelineEnv) Close() {
	if pe.Store != nil {
		_ = pe.Store.Close()
	}
}

// initPipeline sets up the store and chat backend and builds the Pipeline.
// Callers should defer env.Close().
func initPipeline(ctx context.Context) (*pipelineEnv, error) {
	st, err := store.Open(ctx, cfg.Store.Driver, cfg.Store.DatabaseURL)
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}

	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}

	year := cfg.Pipeline.Year
	if year == 0 {
		year = time.Now().Year()
	}

	backend := initBackend()
	gateway := generate.NewGateway(backend, synth.New(synth.WithYear(year)))
	renderer := render.New(render.WithYear(year))

	return &pipelineEnv{
		Store:    st,
		Pipeline: pipeline.New(gateway, renderer, pipeline.WithYear(year)),
		Year:     year,
	}, nil
}

// initBackend builds the chat backend for the configured provider. A nil
// return means analysis runs on the local synthesizer alone.
func initBackend() generate.Generator {
	switch cfg.ResolveProvider() {
	case "deploy":
		var opts []deployai.Option
		if cfg.Deploy.AuthURL != "" {
			opts = append(opts, deployai.WithAuthURL(cfg.Deploy.AuthURL))
		}
		if cfg.Deploy.BaseURL != "" {
			opts = append(opts, deployai.WithBaseURL(cfg.Deploy.BaseURL))
		}
		if cfg.Deploy.AgentID != "" {
			opts = append(opts, deployai.WithAgentID(cfg.Deploy.AgentID))
		}
		client := deployai.NewClient(cfg.Deploy.ClientID, cfg.Deploy.ClientSecret, cfg.Deploy.OrgID, opts...)
		zap.L().Info("deploy ai backend enabled")
		return generate.NewDeployBackend(client)
	case "anthropic":
		client := anthropicpkg.NewClient(cfg.Anthropic.Key)
		zap.L().Info("anthropic backend enabled", zap.String("model", cfg.Anthropic.Model))
		return generate.NewAnthropicBackend(client, cfg.Anthropic.Model)
	default:
		zap.L().Info("no backend credentials, running on local synthesis")
		return nil
	}
}
