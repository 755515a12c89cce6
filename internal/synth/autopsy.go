package synth

import (
	"fmt"
	"strings"

	"github.com/relaunch-ai/relaunch-cli/internal/model"
)

// autopsyReport composes the stage 2 payload. Ratings come from the keyword
// rules; every finding and evidence string is parameterized by the recovered
// fields so two startups with different inputs never read the same.
func autopsyReport(f Fields) *model.AutopsyReport {
	ratings := RateDimensions(f.Signals, f.WhyFailed)
	activeStr := ActiveSpan(f.Founded, f.Shutdown)
	sigCtx := strings.ToLower(strings.Join(f.Signals, " "))

	timing := ratings["timing"]
	market := ratings["market_size_monetization"]
	pmf := ratings["pmf"]
	team := ratings["team_execution"]
	comp := ratings["competition_defensibility"]
	extern := ratings["external_factors"]

	timingWindow := "competitive but addressable with the right positioning"
	timingEvTail := "No specific timing crisis was flagged in available signals."
	if timing == model.RatingCritical {
		timingWindow = "still maturing, making customer education expensive and sales cycles long"
		timingEvTail = "Founder noted market timing as a factor."
	}

	marketEvTail := "No confirmed ARR or revenue milestones were publicly disclosed."
	if market == model.RatingCritical {
		marketEvTail = "Founder cited pricing/monetisation as a challenge."
	}

	pmfTrajectory := "struggled from the outset to demonstrate consistent, organic customer pull"
	if pmf == model.RatingSignificant {
		pmfTrajectory = "showed initial traction but failed to retain customers at the rate needed to justify continued investment"
	}
	pmfEvTail := "No public retention or engagement metrics confirm sustained PMF."
	if strings.Contains(sigCtx, "growth stalled") {
		pmfEvTail = "Growth stalled after initial traction — a classic late-stage PMF failure signal."
	}

	teamFinding := fmt.Sprintf(
		"%s faced execution challenges common to startups in the %s space: "+
			"hiring the right talent, managing burn, and pivoting quickly enough to stay ahead of market feedback.",
		f.Name, f.Category)
	if team == model.RatingCritical {
		teamFinding = "The team fell apart before the company could recover — a critical execution failure that compounded every other problem."
	}
	teamEvidence := fmt.Sprintf(
		"No public founder conflict data available for %s. Shutdown timeline implies execution gaps went unresolved for too long.",
		f.Name)
	if strings.Contains(sigCtx, "team fell apart") {
		teamEvidence = "Team fragmentation explicitly cited as a failure factor."
	}

	compFinding := fmt.Sprintf(
		"The %s space in which %s competed became increasingly crowded between %s and %s.",
		f.Category, f.Name, f.Founded, f.Shutdown)
	compEvidence := fmt.Sprintf(
		"Standard competitive pressure in the %s market during %s–%s. No specific copycat event was flagged in available signals.",
		f.Category, f.Founded, f.Shutdown)
	if comp == model.RatingCritical {
		compFinding = fmt.Sprintf(
			"A larger competitor moved into the space and commoditised the core value proposition before %s could build sufficient defensibility.",
			f.Name)
		compEvidence = "Competitor copying explicitly cited as a factor."
	}

	externFinding := fmt.Sprintf("No catastrophic external event appears to have been the primary cause of %s's failure.", f.Name)
	externEvidence := "No confirmed regulatory, pandemic, or macro event was the proximate cause of the shutdown."
	if extern == model.RatingCritical {
		externFinding = "Regulatory intervention was cited as a direct blocker — an external factor largely outside the team's control."
		externEvidence = "Regulation explicitly cited as a blocking factor."
	}

	return &model.AutopsyReport{
		PrimaryFailureHypothesis: fmt.Sprintf(
			"%s failed to achieve product-market fit within its %s lifespan — "+
				"spending %s without validating a sustainable path to growth, "+
				"and ultimately shutting down when the gap between capital efficiency and market demand became insurmountable.",
			f.Name, activeStr, f.Funding),
		OverallScore: 22,
		DataNote: fmt.Sprintf(
			"Analysis is partially inferred from founder-provided context and publicly available signals. "+
				"Direct metrics (churn, NPS, revenue) were not publicly disclosed by %s.", f.Name),
		Timing: model.DimensionFinding{
			Rating: timing,
			Finding: fmt.Sprintf(
				"%s operated from %s to %s. "+
					"The %s market during this window was %s. "+
					"The timing of the shutdown in %s suggests the team ran out of time before the market came to them.",
				f.Name, f.Founded, f.Shutdown, f.Category, timingWindow, f.Shutdown),
			Evidence: fmt.Sprintf(
				"Active from %s–%s (%s). "+
					"Funding of %s was not sufficient to outlast the market timing gap. %s",
				f.Founded, f.Shutdown, activeStr, f.Funding, timingEvTail),
		},
		MarketSizeMonetization: model.DimensionFinding{
			Rating: market,
			Finding: fmt.Sprintf(
				"The monetisation model for %s's %s product was never definitively validated at scale. "+
					"With %s raised, the path to a unit-economics-positive business required either a larger TAM "+
					"than the market supported or a pricing model that customers consistently accepted.",
				f.Name, f.Category, f.Funding),
			Evidence: fmt.Sprintf(
				"Funding of %s is consistent with a seed/Series A stage company that had not yet demonstrated "+
					"repeatable revenue. %s", f.Funding, marketEvTail),
		},
		PMF: model.DimensionFinding{
			Rating: pmf,
			Finding: fmt.Sprintf(
				"%s's core product — %s — %s. "+
					"The gap between early adopter enthusiasm and mainstream adoption was never bridged.",
				f.Name, ShortDesc(f.Desc, 120), pmfTrajectory),
			Evidence: fmt.Sprintf(
				"Shutdown in %s without a successful exit or acqui-hire strongly implies PMF was not achieved. %s",
				f.Shutdown, pmfEvTail),
		},
		TeamExecution: model.DimensionFinding{
			Rating: team,
			Finding: fmt.Sprintf(
				"%s  The %s window suggests the team had time to attempt corrections but could not find the right formula.",
				teamFinding, activeStr),
			Evidence: teamEvidence,
		},
		CompetitionDefensibility: model.DimensionFinding{
			Rating: comp,
			Finding: fmt.Sprintf(
				"%s  Without a clear moat — proprietary data, network effects, or switching costs — "+
					"%s was vulnerable to better-funded competitors replicating its core features.",
				compFinding, f.Name),
			Evidence: compEvidence,
		},
		ExternalFactors: model.DimensionFinding{
			Rating: extern,
			Finding: fmt.Sprintf(
				"%s  However, macro conditions during %s–%s (funding environment, market sentiment in the %s sector) "+
					"may have reduced the window for recovery.",
				externFinding, f.Founded, f.Shutdown, f.Category),
			Evidence: externEvidence,
		},
	}
}
