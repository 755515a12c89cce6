package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument(Startup{Name: "Vela"})

	assert.Equal(t, "Vela", doc.Startup.Name)
	assert.Equal(t, ConfidenceMedium, doc.DataConfidence)
	assert.Nil(t, doc.Research)
	assert.Empty(t, doc.Progress)
	assert.False(t, doc.Complete())
}

func TestDocumentClone_ProgressIsolated(t *testing.T) {
	doc := NewDocument(Startup{Name: "Vela"})
	doc.AppendProgress("step one")

	clone := doc.Clone()
	clone.AppendProgress("step two")

	assert.Equal(t, []string{"step one"}, doc.Progress)
	assert.Equal(t, []string{"step one", "step two"}, clone.Progress)
}

func TestDocumentComplete(t *testing.T) {
	doc := NewDocument(Startup{Name: "Vela"})
	doc.Research = &ResearchDossier{}
	doc.Autopsy = &AutopsyReport{}
	doc.Revival = &RevivalPlan{}
	doc.Copy = &CopyDeck{}
	assert.False(t, doc.Complete())

	doc.RenderedPage = "<html></html>"
	assert.True(t, doc.Complete())
}

func TestStartupNameKey(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Vela", "vela"},
		{"  Vela Labs  ", "vela labs"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Startup{Name: tt.in}.NameKey())
	}
}

func TestStartupHasFounderPerspective(t *testing.T) {
	assert.False(t, Startup{}.HasFounderPerspective())
	assert.True(t, Startup{FounderWhyFailed: "we mispriced"}.HasFounderPerspective())
	assert.True(t, Startup{WhatDifferent: "charge earlier"}.HasFounderPerspective())
}

func TestAutopsyDimensionsOrder(t *testing.T) {
	a := &AutopsyReport{
		Timing: DimensionFinding{Rating: RatingCritical},
		PMF:    DimensionFinding{Rating: RatingMinor},
	}
	dims := a.Dimensions()
	assert.Len(t, dims, 6)
	assert.Equal(t, "timing", dims[0].Key)
	assert.Equal(t, RatingCritical, dims[0].Finding.Rating)
	assert.Equal(t, "pmf", dims[2].Key)
	assert.Equal(t, "external_factors", dims[5].Key)
}
