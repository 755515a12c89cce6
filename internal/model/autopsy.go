package model

// Severity ratings for a single failure dimension.
const (
	RatingCritical    = "Critical"
	RatingSignificant = "Significant"
	RatingMinor       = "Minor"
	RatingNotAFactor  = "Not a factor"
)

// DimensionFinding is the analysis of one failure dimension.
type DimensionFinding struct {
	Rating   string `json:"rating"`
	Finding  string `json:"finding"`
	Evidence string `json:"evidence"`
}

// AutopsyReport is the stage 2 payload: six-dimension failure analysis with
// a single primary hypothesis and a 0-100 survival score.
type AutopsyReport struct {
	PrimaryFailureHypothesis string `json:"primary_failure_hypothesis"`
	OverallScore             int    `json:"overall_score"`
	DataNote                 string `json:"data_note"`

	Timing                   DimensionFinding `json:"timing"`
	MarketSizeMonetization   DimensionFinding `json:"market_size_monetization"`
	PMF                      DimensionFinding `json:"pmf"`
	TeamExecution            DimensionFinding `json:"team_execution"`
	CompetitionDefensibility DimensionFinding `json:"competition_defensibility"`
	ExternalFactors          DimensionFinding `json:"external_factors"`
}

// Dimensions returns the six findings keyed by their payload names, in a
// fixed order for rendering.
func (a *AutopsyReport) Dimensions() []struct {
	Key     string
	Finding DimensionFinding
} {
	return []struct {
		Key     string
		Finding DimensionFinding
	}{
		{"timing", a.Timing},
		{"market_size_monetization", a.MarketSizeMonetization},
		{"pmf", a.PMF},
		{"team_execution", a.TeamExecution},
		{"competition_defensibility", a.CompetitionDefensibility},
		{"external_factors", a.ExternalFactors},
	}
}
