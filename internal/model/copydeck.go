package model

// SummaryCard condenses the autopsy into a shareable card.
type SummaryCard struct {
	Headline          string   `json:"headline"`
	PrimaryHypothesis string   `json:"primary_hypothesis"`
	Top3Factors       []string `json:"top_3_factors"`
	KillerQuote       string   `json:"killer_quote"`
}

// RevivalPitch is the investor-facing pitch for the revived startup.
type RevivalPitch struct {
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
	Market   string `json:"market"`
	WhyNow   string `json:"why_now"`
	Ask      string `json:"ask"`
}

// CopyDeck is the stage 4 payload: three polished marketing outputs.
type CopyDeck struct {
	AutopsySummaryCard SummaryCard  `json:"autopsy_summary_card"`
	RevivalPitch       RevivalPitch `json:"revival_pitch"`
	ElevatorPitch      string       `json:"elevator_pitch"`
}
