package model

import "strings"

// Startup holds the caller-supplied facts about a failed startup. Identity
// fields are immutable after construction; every later artifact is derived
// from them.
type Startup struct {
	// Required identity.
	Name string `json:"startup_name" yaml:"startup_name"`

	// Optional identity.
	Industry           string `json:"industry" yaml:"industry"`
	Country            string `json:"country" yaml:"country"`
	YearFounded        string `json:"year_founded" yaml:"year_founded"`
	YearShutdown       string `json:"year_shutdown" yaml:"year_shutdown"`
	FundingRange       string `json:"funding_range" yaml:"funding_range"`
	ProductDescription string `json:"product_description" yaml:"product_description"`

	// Optional founder narrative.
	Overview         string `json:"startup_overview" yaml:"startup_overview"`
	WhyFailed        string `json:"why_failed_shutdown" yaml:"why_failed_shutdown"`
	FounderWhyFailed string `json:"founder_why_failed" yaml:"founder_why_failed"`
	CustomerFeedback string `json:"customer_feedback" yaml:"customer_feedback"`
	PivotsTried      string `json:"pivots_tried" yaml:"pivots_tried"`
	WhatDifferent    string `json:"what_different" yaml:"what_different"`

	// Categorical failure-signal tags, e.g. "ran out of money".
	ContextSignals []string `json:"context_signals" yaml:"context_signals"`
}

// NameKey returns the cache key for this startup: trimmed, lowercased name.
func (s Startup) NameKey() string {
	return strings.ToLower(strings.TrimSpace(s.Name))
}

// HasFounderPerspective reports whether the founder supplied any account of
// the failure. The copywriter stage keeps its pitch founder-agnostic when
// this is false.
func (s Startup) HasFounderPerspective() bool {
	return s.FounderWhyFailed != "" || s.WhatDifferent != ""
}
