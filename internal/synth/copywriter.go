package synth

import (
	"fmt"

	"github.com/relaunch-ai/relaunch-cli/internal/model"
)

// copyDeck composes the stage 4 payload: summary card, investor pitch, and
// elevator pitch.
func copyDeck(f Fields, year int) *model.CopyDeck {
	activeStr := ActiveSpan(f.Founded, f.Shutdown)

	quote := "We had the right problem. We had the wrong solution."
	if f.WhyFailed != "" {
		quote = ShortDesc(f.WhyFailed, 120)
	}

	return &model.CopyDeck{
		AutopsySummaryCard: model.SummaryCard{
			Headline: fmt.Sprintf("How %s Failed in %s", f.Name, activeStr),
			PrimaryHypothesis: fmt.Sprintf(
				"%s raised %s but couldn't find a sustainable business model in the %s space "+
					"before the runway ran out — a failure of validation speed, not vision.",
				f.Name, f.Funding, f.Category),
			Top3Factors: []string{
				"Failed to achieve product-market fit before capital was exhausted",
				fmt.Sprintf("Operated in a %s market with strong, often better-funded competitors", f.Category),
				"Pivoted too late or not enough to find a wedge that customers would pay for",
			},
			KillerQuote: fmt.Sprintf("%q — %s founder perspective", quote, f.Name),
		},
		RevivalPitch: model.RevivalPitch{
			Problem: fmt.Sprintf(
				"%s — this problem is real and still largely unsolved. "+
					"The original %s approach was expensive, under-validated, and vulnerable to better-funded competitors. "+
					"Customers in the %s space are still searching for a purpose-built solution that the market hasn't delivered.",
				f.Desc, f.Name, f.Category),
			Solution: fmt.Sprintf(
				"%s (%d): same core insight, completely rebuilt execution. "+
					"We start with 10 paying customers and a concierge MVP before writing a line of scalable code. "+
					"Post-2023 AI infrastructure cuts build cost by 60–80%%, meaning we can validate in 90 days "+
					"what the original took %s to attempt.",
				f.Name, year, activeStr),
			Market: fmt.Sprintf(
				"The %s market in %s has grown and matured since %s. "+
					"Buyer education costs are lower, infrastructure is commoditised, and the timing window that worked against %s "+
					"may now be firmly in our favour. The %d market is fundamentally different from the one that rejected the original.",
				f.Category, f.Market, f.Shutdown, f.Name, year),
			WhyNow: fmt.Sprintf(
				"Three forces converge in %d: (1) AI tooling cuts the cost of building in %s by 60–80%%; "+
					"(2) the %s market has matured — customers are more educated and infrastructure is cheaper; "+
					"(3) the lessons from %s's failure are now a blueprint, not a scar. "+
					"What required %s and %s to attempt can now be validated for under $500K in 90 days.",
				year, f.Category, f.Category, f.Name, f.Funding, activeStr),
			Ask: fmt.Sprintf(
				"Raising $1.5M pre-seed to reach 25 paying customers and $500K ARR within 12 months. "+
					"%s spent %s proving the problem is real. "+
					"We're spending $1.5M proving we can own the solution — with a 90-day concierge validation "+
					"before a single line of scalable code is written.",
				f.Name, f.Funding),
		},
		ElevatorPitch: fmt.Sprintf(
			"%s (%d) is a lean revival of the original %s — %s — "+
				"rebuilt with every lesson from the original failure baked into the founding thesis. "+
				"The original spent %s on the wrong execution; we're spending $1.5M on the right one, "+
				"starting with 10 paying customers before we write a line of scalable code.",
			f.Name, year, f.Name, ShortDesc(f.Desc, 90), f.Funding),
	}
}
