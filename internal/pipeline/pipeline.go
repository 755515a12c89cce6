// Package pipeline runs the five-stage failed-startup analysis: research,
// autopsy, revival, copywriting, rendering. Stages execute sequentially;
// each consumes the document so far and returns a new copy with one result
// slot filled.
package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/relaunch-ai/relaunch-cli/internal/generate"
	"github.com/relaunch-ai/relaunch-cli/internal/model"
)

// Renderer turns a fully analysed document into landing-page HTML.
type Renderer interface {
	Render(doc *model.Document) (string, error)
}

// Pipeline orchestrates the five stages.
type Pipeline struct {
	gen      generate.Generator
	renderer Renderer
	year     int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithYear pins the relaunch year used in prompts and synthesized output.
func WithYear(year int) Option {
	return func(p *Pipeline) { p.year = year }
}

// New creates a Pipeline. The generator is expected to be the resilient
// gateway; the pipeline itself never aborts on generation trouble.
func New(gen generate.Generator, renderer Renderer, opts ...Option) *Pipeline {
	p := &Pipeline{
		gen:      gen,
		renderer: renderer,
		year:     time.Now().Year(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run analyses one startup. The only fatal input error is a blank name;
// everything downstream degrades instead of failing, so a returned document
// always has all five stages complete.
func (p *Pipeline) Run(ctx context.Context, st model.Startup) (*model.Document, error) {
	if strings.TrimSpace(st.Name) == "" {
		return nil, eris.New("pipeline: startup name is required")
	}

	log := zap.L().With(zap.String("startup", st.Name))
	log.Info("pipeline: starting analysis")

	doc := model.NewDocument(st)

	stages := []struct {
		stage model.Stage
		fn    func(context.Context, *model.Document) *model.Document
	}{
		{model.StageResearch, p.researchStage},
		{model.StageAutopsy, p.autopsyStage},
		{model.StageRevival, p.revivalStage},
		{model.StageCopywriter, p.copywriterStage},
		{model.StageRender, p.renderStage},
	}
	for _, s := range stages {
		doc = p.trackStage(ctx, log, s.stage, doc, s.fn)
	}

	log.Info("pipeline: analysis complete",
		zap.String("confidence", doc.DataConfidence),
		zap.Int("progress_entries", len(doc.Progress)),
	)
	return doc, nil
}

func (p *Pipeline) trackStage(
	ctx context.Context,
	log *zap.Logger,
	stage model.Stage,
	doc *model.Document,
	fn func(context.Context, *model.Document) *model.Document,
) *model.Document {
	start := time.Now()
	out := fn(ctx, doc)
	log.Info("pipeline: stage complete",
		zap.String("stage", string(stage)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return out
}
