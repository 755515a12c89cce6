package model

// Source is a pointer to a public data source referenced by the dossier.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CompetitorArchetype is one of three generated competitor success
// narratives used as contrastive material in the research dossier. Every
// proper noun in its text traces back to the startup's own fields.
type CompetitorArchetype struct {
	Name         string `json:"name"`
	Outcome      string `json:"outcome"`
	WhySucceeded string `json:"why_succeeded"`
	KeyLesson    string `json:"key_lesson"`
	HowToApply   string `json:"how_to_apply"`
}

// ResearchDossier is the stage 1 payload: everything publicly knowable about
// the failed startup, plus derived market analysis.
type ResearchDossier struct {
	Name                 string                `json:"name"`
	Founded              string                `json:"founded"`
	Shutdown             string                `json:"shutdown"`
	Funding              string                `json:"funding"`
	Investors            []string              `json:"investors"`
	Category             string                `json:"category"`
	Market               string                `json:"market"`
	OneLiner             string                `json:"one_liner"`
	WhatTheyBuilt        string                `json:"what_they_built"`
	PressCoverage        string                `json:"press_coverage"`
	FounderInterviews    string                `json:"founder_interviews"`
	CommunitySignals     string                `json:"community_signals"`
	Pivots               string                `json:"pivots"`
	CompetitorLandscape  string                `json:"competitor_landscape"`
	MarketConditions     string                `json:"market_conditions"`
	KeyMarketShifts      []string              `json:"key_market_shifts"`
	CompetitorsDoingWell []CompetitorArchetype `json:"competitors_doing_well"`
	DataConfidence       string                `json:"data_confidence"`
	PublicDataAvailable  bool                  `json:"public_data_available"`
	Sources              []Source              `json:"sources"`
}
