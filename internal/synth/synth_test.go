package synth

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaunch-ai/relaunch-cli/internal/model"
)

func TestSynthesize_Research(t *testing.T) {
	s := New(WithYear(2025))
	raw := s.Synthesize(model.StageResearch, "", velaContext)

	var dossier model.ResearchDossier
	require.NoError(t, json.Unmarshal([]byte(raw), &dossier))

	assert.Equal(t, "Vela", dossier.Name)
	assert.Equal(t, "2019", dossier.Founded)
	assert.Equal(t, "2022", dossier.Shutdown)
	assert.Equal(t, "$3M", dossier.Funding)
	assert.Equal(t, "Fintech", dossier.Category)
	assert.Equal(t, "medium", dossier.DataConfidence)
	assert.True(t, dossier.PublicDataAvailable)
	assert.Len(t, dossier.KeyMarketShifts, 5)
	assert.Len(t, dossier.Sources, 8)
	require.Len(t, dossier.CompetitorsDoingWell, 3)
	for _, shift := range dossier.KeyMarketShifts {
		assert.True(t, strings.Contains(shift, "Vela") || strings.Contains(shift, "Fintech"), shift)
	}
}

func TestSynthesize_Autopsy(t *testing.T) {
	s := New(WithYear(2025))
	raw := s.Synthesize(model.StageAutopsy, "", velaContext)

	var report model.AutopsyReport
	require.NoError(t, json.Unmarshal([]byte(raw), &report))

	assert.Equal(t, 22, report.OverallScore)
	assert.Contains(t, report.PrimaryFailureHypothesis, "Vela")
	assert.Contains(t, report.PrimaryFailureHypothesis, "2019–2022 (3 years)")
	assert.Equal(t, "Critical", report.MarketSizeMonetization.Rating)
	assert.Equal(t, "Significant", report.TeamExecution.Rating)
	assert.Equal(t, "Significant", report.Timing.Rating)
	assert.Equal(t, "Minor", report.CompetitionDefensibility.Rating)
	assert.Equal(t, "Minor", report.ExternalFactors.Rating)
	for _, d := range report.Dimensions() {
		assert.NotEmpty(t, d.Finding.Finding, d.Key)
		assert.NotEmpty(t, d.Finding.Evidence, d.Key)
	}
}

func TestSynthesize_Revival(t *testing.T) {
	s := New(WithYear(2025))
	raw := s.Synthesize(model.StageRevival, "", velaContext)

	var plan model.RevivalPlan
	require.NoError(t, json.Unmarshal([]byte(raw), &plan))

	assert.Equal(t, "Vela (2025)", plan.RevisedName)
	assert.Contains(t, plan.CoreInsight, "Vela")
	assert.Len(t, plan.GTMStrategy.NinetyDayPlan, 6)
	assert.Len(t, plan.GTMStrategy.WhatNotToDo, 5)
	assert.Len(t, plan.RiskRegister, 3)
	assert.Contains(t, plan.RiskRegister[0].Risk, "$3M")
}

func TestSynthesize_Copywriter(t *testing.T) {
	s := New(WithYear(2025))
	raw := s.Synthesize(model.StageCopywriter, "", velaContext)

	var deck model.CopyDeck
	require.NoError(t, json.Unmarshal([]byte(raw), &deck))

	assert.Contains(t, deck.AutopsySummaryCard.Headline, "Vela")
	assert.Len(t, deck.AutopsySummaryCard.Top3Factors, 3)
	assert.Contains(t, deck.ElevatorPitch, "Vela (2025)")
	assert.NotEmpty(t, deck.RevivalPitch.Problem)
	assert.NotEmpty(t, deck.RevivalPitch.Ask)
}

func TestSynthesize_Pure(t *testing.T) {
	s := New(WithYear(2025))
	first := s.Synthesize(model.StageResearch, "", velaContext)
	second := s.Synthesize(model.StageResearch, "", velaContext)
	assert.Equal(t, first, second)
}

func TestSynthesize_UnknownStageFallsBackToRole(t *testing.T) {
	s := New(WithYear(2025))
	raw := s.Synthesize(model.StageUnknown,
		"You are the world's most ruthless startup post-mortem analyst.", velaContext)

	var report model.AutopsyReport
	require.NoError(t, json.Unmarshal([]byte(raw), &report))
	assert.Equal(t, 22, report.OverallScore)
}

func TestSynthesize_DegenerateAcknowledgment(t *testing.T) {
	s := New(WithYear(2025))
	got := s.Synthesize(model.StageUnknown, "You are a helpful assistant.", velaContext)
	assert.Equal(t, "Analysis complete for Vela.", got)
}

func TestSynthesize_ExplicitStageIgnoresRoleText(t *testing.T) {
	s := New(WithYear(2025))
	raw := s.Synthesize(model.StageResearch,
		"You are an elite startup copywriter.", velaContext)

	var dossier model.ResearchDossier
	require.NoError(t, json.Unmarshal([]byte(raw), &dossier))
	assert.Equal(t, "Vela", dossier.Name)
}

func TestClassifyRole(t *testing.T) {
	tests := []struct {
		name string
		role string
		want model.Stage
	}{
		{"research", "a research analyst producing a structured dossier", model.StageResearch},
		{"research encyclopaedic", "encyclopaedic knowledge of tech and venture capital", model.StageResearch},
		{"autopsy", "the world's most ruthless analyst", model.StageAutopsy},
		{"revival", "a world-class startup strategist and relaunch specialist", model.StageRevival},
		{"copywriter", "an elite startup copywriter producing three polished outputs", model.StageCopywriter},
		{"copywriter wins over strategist", "a strategist and copywriter for the revival pitch", model.StageCopywriter},
		{"unmatched", "a helpful assistant", model.StageUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRole(tt.role))
		})
	}
}

func TestCompetitorArchetypes(t *testing.T) {
	f := ParseFields(velaContext).Resolve()
	archetypes := CompetitorArchetypes(f, 2025)
	require.Len(t, archetypes, 3)

	names := []string{
		"The Narrow-Wedge Fintech Player",
		"The Revenue-First Fintech Builder",
		"The Channel-Owned Fintech Entrant",
	}
	for i, a := range archetypes {
		assert.Equal(t, names[i], a.Name)
		assert.NotEmpty(t, a.Outcome)
		assert.NotEmpty(t, a.WhySucceeded)
		assert.NotEmpty(t, a.KeyLesson)
		assert.NotEmpty(t, a.HowToApply)
		text := a.Outcome + a.WhySucceeded + a.KeyLesson + a.HowToApply
		assert.True(t,
			strings.Contains(text, f.Name) || strings.Contains(text, f.Category),
			"archetype %d must reference the startup's own facts", i)
	}
}
