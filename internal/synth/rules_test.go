package synth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateDimensions_Defaults(t *testing.T) {
	got := RateDimensions(nil, "")

	assert.Equal(t, map[string]string{
		"timing":                    "Significant",
		"market_size_monetization":  "Significant",
		"pmf":                       "Significant",
		"team_execution":            "Significant",
		"competition_defensibility": "Minor",
		"external_factors":          "Minor",
	}, got)
}

func TestRateDimensions_Keywords(t *testing.T) {
	tests := []struct {
		name      string
		signals   []string
		narrative string
		dimension string
		want      string
	}{
		{"team fell apart", []string{"Team fell apart"}, "", "team_execution", "Critical"},
		{"ran out of money hits market, not team", []string{"ran out of money"}, "", "market_size_monetization", "Critical"},
		{"ran out of money leaves team at default", []string{"ran out of money"}, "", "team_execution", "Significant"},
		{"growth stalled", []string{"growth stalled"}, "", "pmf", "Critical"},
		{"lockdown hits timing", []string{"lockdown"}, "", "timing", "Critical"},
		{"lockdown hits external", []string{"lockdown"}, "", "external_factors", "Critical"},
		{"larger competitor", nil, "a larger competitor shipped the same feature", "competition_defensibility", "Critical"},
		{"unrelated tags keep defaults", []string{"bad weather"}, "", "team_execution", "Significant"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RateDimensions(tt.signals, tt.narrative)
			assert.Equal(t, tt.want, got[tt.dimension])
		})
	}
}

func TestRateDimensions_Pure(t *testing.T) {
	signals := []string{"Growth Stalled", "regulation"}
	assert.Equal(t, RateDimensions(signals, "x"), RateDimensions(signals, "x"))
}

func TestDimensionRules_CoverSixDimensions(t *testing.T) {
	rules := DimensionRules()
	require.Len(t, rules, 6)

	keys := make([]string, 0, len(rules))
	for _, r := range rules {
		keys = append(keys, r.Key)
		assert.NotEmpty(t, r.Keywords, r.Key)
		assert.Contains(t, []string{"Significant", "Minor"}, r.Default, r.Key)
	}
	assert.Equal(t, []string{
		"timing", "market_size_monetization", "pmf",
		"team_execution", "competition_defensibility", "external_factors",
	}, keys)
}

func TestChannelFor(t *testing.T) {
	tests := []struct {
		category string
		fragment string
	}{
		{"B2B SaaS", "free tier"},
		{"Digital Health", "health systems"},
		{"Consumer Audio", "organic content channel"},
		{"Fintech", "API-first developer adoption"},
		{"IoT Hardware", "strategic distribution partnership"},
		{"Agriculture", "trusted distribution partner"},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got := ChannelFor(tt.category)
			assert.Contains(t, got, tt.fragment)
		})
	}
}

func TestChannelFor_FirstMatchWins(t *testing.T) {
	// "consumer fintech" hits the consumer bucket before the fintech one.
	got := ChannelFor("Consumer Fintech")
	assert.True(t, strings.Contains(got, "organic content channel"), got)
}

func TestChannelFor_DefaultNamesCategory(t *testing.T) {
	got := ChannelFor("Agritech")
	assert.Contains(t, got, "Agritech")
}
