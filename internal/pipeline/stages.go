package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/relaunch-ai/relaunch-cli/internal/generate"
	"github.com/relaunch-ai/relaunch-cli/internal/model"
)

// Role text sent to real generation backends. Dispatch never reads these;
// the stage identifier on the request does that. The synthesizer's role
// classifier recognizes the same phrases for backends that echo them.
const (
	roleResearch = "You are a startup research analyst with encyclopaedic knowledge of tech, venture capital, and business history. " +
		"Your job is to produce a structured research dossier on a failed startup. " +
		"Gather everything publicly known: funding rounds, investors, team, press coverage, founder interviews, " +
		"community signals (Reddit, HN, Product Hunt), pivots, competitor landscape, and market conditions. " +
		"If little public data is available, set data_confidence to 'low' and note what is missing. " +
		"Return ONLY valid JSON with keys: name, founded, shutdown, funding, investors, category, market, " +
		"one_liner, what_they_built, press_coverage, founder_interviews, community_signals, pivots, " +
		"competitor_landscape, market_conditions, data_confidence (high/medium/low), public_data_available (bool)."

	roleAutopsy = "You are the world's most ruthless startup post-mortem analyst. " +
		"Analyse this startup's failure across exactly six dimensions with specific, evidence-backed reasoning. " +
		"Be harsh, honest, and specific — not generic. This is the honest advisor the founder never had. " +
		"Return ONLY valid JSON with keys: " +
		"primary_failure_hypothesis (one clear sentence — the single most important reason), " +
		"overall_score (0–100 survival score, most failures score under 30), " +
		"data_note (string, empty if data was sufficient), " +
		"timing {rating, finding, evidence}, " +
		"market_size_monetization {rating, finding, evidence}, " +
		"pmf {rating, finding, evidence}, " +
		"team_execution {rating, finding, evidence}, " +
		"competition_defensibility {rating, finding, evidence}, " +
		"external_factors {rating, finding, evidence}. " +
		"Ratings: Critical / Significant / Minor / Not a factor."

	roleCopywriter = "You are an elite startup copywriter — YC Demo Day meets Stripe's homepage. " +
		"Produce exactly three polished outputs for the revived startup. " +
		"Write in the voice of a confident founder, not an AI. Be punchy and specific. " +
		"Return ONLY valid JSON with keys: " +
		"autopsy_summary_card { headline, primary_hypothesis, top_3_factors (array), killer_quote }, " +
		"revival_pitch { problem, solution, market, why_now, ask }, " +
		"elevator_pitch (string — exactly 3 sentences: what it does, who it's for, why it wins this time)."

	lowDataNote = "\nNOTE: Limited public data is available for this startup. " +
		"Be explicit about what you are inferring vs. what you found directly. " +
		"Lean heavily on the founder's own inputs where public data is sparse."

	founderAgnosticNote = "\nNote: No founder perspective was provided — keep the revival pitch founder-agnostic."
)

func roleRevival(year int) string {
	return fmt.Sprintf("You are a world-class startup strategist and relaunch specialist. "+
		"Given this failed startup's full autopsy, design what it would look like relaunched in %d "+
		"with every lesson baked in. Be specific, opinionated, and actionable — not generic. "+
		"Return ONLY valid JSON with keys: "+
		"core_insight (the genuine good idea buried in the failure), "+
		"revised_name, revised_icp, repositioning_statement (corrects original positioning mistakes), "+
		"gtm_strategy { primary_channel, why_channel, 90_day_plan (array of {week, action}), "+
		"what_not_to_do (array of strings), pricing_model }, "+
		"competitive_landscape_today (has the space changed since failure?), "+
		"risk_register (array of {risk, mitigation} — top 3 only).", year)
}

func (p *Pipeline) researchStage(ctx context.Context, doc *model.Document) *model.Document {
	raw := p.generate(ctx, model.StageResearch, roleResearch, BuildContext(doc.Startup))

	dossier := &model.ResearchDossier{}
	if !decodePayload(raw, dossier) {
		dossier = &model.ResearchDossier{
			Name:                doc.Startup.Name,
			OneLiner:            rawPrefix(raw, 200),
			DataConfidence:      "low",
			PublicDataAvailable: false,
		}
	}
	if dossier.DataConfidence == "" {
		dossier.DataConfidence = model.ConfidenceMedium
	}

	next := doc.Clone()
	next.Research = dossier
	next.DataConfidence = dossier.DataConfidence
	next.AppendProgress(fmt.Sprintf("✅ Research dossier built — confidence: %s",
		strings.ToUpper(dossier.DataConfidence)))
	return next
}

func (p *Pipeline) autopsyStage(ctx context.Context, doc *model.Document) *model.Document {
	role := roleAutopsy
	if doc.DataConfidence == "low" {
		role += lowDataNote
	}
	content := fmt.Sprintf("startup_name: %q\n\nResearch dossier:\n%s\n\nFounder inputs:\n%s",
		doc.Startup.Name, indentJSON(doc.Research), BuildContext(doc.Startup))
	raw := p.generate(ctx, model.StageAutopsy, role, content)

	report := &model.AutopsyReport{}
	if !decodePayload(raw, report) {
		report = &model.AutopsyReport{
			PrimaryFailureHypothesis: rawPrefix(raw, 300),
			OverallScore:             15,
		}
	}

	next := doc.Clone()
	next.Autopsy = report
	next.AppendProgress("✅ Autopsy complete — 6-lens failure analysis done")
	return next
}

func (p *Pipeline) revivalStage(ctx context.Context, doc *model.Document) *model.Document {
	full := map[string]any{
		"research": doc.Research,
		"autopsy":  doc.Autopsy,
		"founder_inputs": map[string]any{
			"why_failed":        doc.Startup.FounderWhyFailed,
			"customer_feedback": doc.Startup.CustomerFeedback,
			"pivots_tried":      doc.Startup.PivotsTried,
			"what_different":    doc.Startup.WhatDifferent,
			"context_signals":   doc.Startup.ContextSignals,
		},
	}
	content := fmt.Sprintf("startup_name: %q\n\nFull context:\n%s\n\nBuild the definitive %d revival strategy.",
		doc.Startup.Name, indentJSON(full), p.year)
	raw := p.generate(ctx, model.StageRevival, roleRevival(p.year), content)

	plan := &model.RevivalPlan{}
	if !decodePayload(raw, plan) {
		plan = &model.RevivalPlan{CoreInsight: rawPrefix(raw, 300)}
	}

	next := doc.Clone()
	next.Revival = plan
	next.AppendProgress("✅ Revival strategy built — GTM, ICP, risk register ready")
	return next
}

func (p *Pipeline) copywriterStage(ctx context.Context, doc *model.Document) *model.Document {
	role := roleCopywriter
	if !doc.Startup.HasFounderPerspective() {
		role += founderAgnosticNote
	}
	full := map[string]any{
		"research": doc.Research,
		"autopsy":  doc.Autopsy,
		"revival":  doc.Revival,
	}
	content := fmt.Sprintf("startup_name: %q\n\nFull context:\n%s", doc.Startup.Name, indentJSON(full))
	raw := p.generate(ctx, model.StageCopywriter, role, content)

	deck := &model.CopyDeck{}
	if !decodePayload(raw, deck) {
		deck = &model.CopyDeck{ElevatorPitch: rawPrefix(raw, 300)}
	}

	next := doc.Clone()
	next.Copy = deck
	next.AppendProgress("✅ Copy written — summary card, pitch & elevator ready")
	return next
}

// renderStage is local: it consumes the four result slots and never calls
// the gateway.
func (p *Pipeline) renderStage(_ context.Context, doc *model.Document) *model.Document {
	next := doc.Clone()
	page, err := p.renderer.Render(doc)
	if err != nil {
		zap.L().Warn("pipeline: render failed", zap.String("startup", doc.Startup.Name), zap.Error(err))
	} else {
		next.RenderedPage = page
	}
	next.AppendProgress("✅ Marketing landing page generated")
	return next
}

// generate calls the gateway, which never fails; a non-nil error still gets
// tolerated by returning the raw text and letting payload decoding degrade.
func (p *Pipeline) generate(ctx context.Context, stage model.Stage, role, content string) string {
	raw, err := p.gen.Generate(ctx, generate.Request{Stage: stage, Role: role, Content: content})
	if err != nil {
		zap.L().Warn("pipeline: generator errored", zap.String("stage", string(stage)), zap.Error(err))
	}
	return raw
}

// decodePayload extracts the outermost JSON object from raw text and
// unmarshals it into the stage schema. false means the caller substitutes a
// degraded payload.
func decodePayload(raw string, v any) bool {
	payload, ok := ExtractPayload(raw)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(payload), v) == nil
}

func indentJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
