package synth

import (
	"fmt"
	"strings"

	"github.com/relaunch-ai/relaunch-cli/internal/model"
)

// signalFlags are the boolean failure-mode markers derived from the keyword
// scan over signal tags plus the failure narrative.
type signalFlags struct {
	RanOut   bool
	NoPMF    bool
	TeamFail bool
	TooEarly bool
	BigComp  bool
}

func scanSignals(signals []string, whyFailed string) signalFlags {
	sigText := strings.ToLower(strings.Join(signals, " ") + " " + whyFailed)
	has := func(kws ...string) bool {
		for _, kw := range kws {
			if strings.Contains(sigText, kw) {
				return true
			}
		}
		return false
	}
	return signalFlags{
		RanOut:   has("ran out of money", "wrong pricing"),
		NoPMF:    has("growth stalled", "product was never finished"),
		TeamFail: has("team fell apart"),
		TooEarly: has("too early", "lockdown"),
		BigComp:  has("larger competitor"),
	}
}

// CompetitorArchetypes generates exactly three competitor success archetypes
// derived entirely from the startup's own inputs. No hardcoded company
// names: every sentence references the startup, its description, its market,
// its failure signals, or its timeline.
func CompetitorArchetypes(f Fields, year int) []model.CompetitorArchetype {
	flags := scanSignals(f.Signals, f.WhyFailed)
	coreDesc := ShortDesc(f.Desc, 75)
	shortName := f.Name
	if i := strings.IndexByte(f.Name, ' '); i > 0 {
		shortName = f.Name[:i]
	}
	cat := f.Category
	if cat == "" {
		cat = "technology"
	}

	activeStr := ActiveSpan(f.Founded, f.Shutdown)

	raisedStr := "its capital"
	if f.FundingDisclosed() {
		raisedStr = f.Funding + " raised"
	}

	return []model.CompetitorArchetype{
		narrowWedge(f, cat, shortName, coreDesc, activeStr),
		revenueFirst(f, cat, raisedStr, flags, year),
		channelOwned(f, cat, raisedStr, activeStr, flags),
	}
}

// Archetype 1 contrasts with the startup's likely over-broad scope.
func narrowWedge(f Fields, cat, shortName, coreDesc, activeStr string) model.CompetitorArchetype {
	outcome := fmt.Sprintf(
		"Achieved self-sustaining growth in the %s %s market — in less time than %s had on the market",
		f.Market, cat, shortName)

	wedgeFull := fmt.Sprintf("tried to address the entire %s space at once", cat)
	if f.Desc != "" {
		wedgeFull = fmt.Sprintf("tried to build %s for the full %s market", coreDesc, cat)
	}

	apply := fmt.Sprintf("The original spent %s trying to be comprehensive — the revival must spend its first 6 months being indispensable for one thing.", activeStr)

	return model.CompetitorArchetype{
		Name:    fmt.Sprintf("The Narrow-Wedge %s Player", cat),
		Outcome: outcome,
		WhySucceeded: fmt.Sprintf(
			"This competitor solved the same core problem as %s but refused to serve more than one "+
				"specific customer segment in the first 12 months. Unlike %s — which %s — "+
				"this player picked the single most painful step in the %s workflow and became "+
				"indispensable for it before touching anything adjacent. "+
				"Every feature, every sales conversation, every pricing decision was anchored to "+
				"that one segment's exact daily pain — not to a broader vision. "+
				"Expansion happened only after word-of-mouth within that segment was self-sustaining.",
			f.Name, f.Name, wedgeFull, cat),
		KeyLesson: fmt.Sprintf(
			"The startup that wins a large market usually enters through the narrowest possible door. "+
				"Narrow scope compresses the feedback loop, reduces burn rate, and manufactures "+
				"the word-of-mouth that broad products can never buy. "+
				"In the %s space, 'solve everything' is a fundraising story — 'solve this one thing completely' "+
				"is a go-to-market strategy.", cat),
		HowToApply: fmt.Sprintf(
			"The revived %s should answer one question before writing a line of code: "+
				"'What is the single most painful, most frequent moment in the %s workflow "+
				"that our target customer in %s experiences?' %s "+
				"Resist every pressure to generalise until that wedge generates unsolicited referrals.",
			f.Name, cat, f.Market, apply),
	}
}

// Archetype 2 contrasts with the startup's failure to validate monetisation
// before burning capital.
func revenueFirst(f Fields, cat, raisedStr string, flags signalFlags, year int) model.CompetitorArchetype {
	capitalContrast := fmt.Sprintf("where %s burned runway before confirming willingness to pay", f.Name)
	if f.FundingDisclosed() {
		capitalContrast = fmt.Sprintf("where %s spent %s validating whether the market existed", f.Name, raisedStr)
	}

	pmfNote := fmt.Sprintf(
		"In the %s space, the gap between 'users love it' and 'users pay for it' "+
			"has killed more startups than any competitor ever has.", cat)
	if flags.NoPMF {
		pmfNote = "Growth stalling after initial traction is a classic late-stage PMF signal — " +
			"it means early adopters adopted but the mainstream refused to follow."
	}

	outcomeRaised := raisedStr
	if outcomeRaised == "its capital" {
		outcomeRaised = "the typical raise for this category"
	}

	lesson := "Revenue should precede roadmap. Every feature should be paid for before it is built."
	if f.FundingDisclosed() {
		lesson = fmt.Sprintf("The %s raised by %s should have purchased 10 paying customers before it purchased a single engineer.", f.Funding, f.Name)
	}

	apply := fmt.Sprintf("Use those 5 paying customers as the only valid input to the %d roadmap. Kill every feature that none of them asked for.", year)
	if flags.RanOut {
		apply = "Those 5 paying customers should fund the first 60 days of development entirely — no external capital needed to reach that milestone."
	}

	return model.CompetitorArchetype{
		Name: fmt.Sprintf("The Revenue-First %s Builder", cat),
		Outcome: fmt.Sprintf(
			"Reached positive unit economics in the %s %s market spending a fraction of %s",
			f.Market, cat, outcomeRaised),
		WhySucceeded: fmt.Sprintf(
			"This competitor's founding rule was: no product feature gets built unless a customer "+
				"has already paid for it. They ran a manual concierge MVP for 90 days — doing the job "+
				"by hand that the software would eventually automate. "+
				"The first 5 customers paid before a single scalable line of code was written. "+
				"Every subsequent feature was pre-sold. "+
				"%s, this player spent under $100K confirming the same hypothesis. %s",
			capitalize(capitalContrast), pmfNote),
		KeyLesson: fmt.Sprintf(
			"Willingness to pay is the only PMF signal that doesn't lie. "+
				"User sign-ups, NPS scores, and letters of intent are all proxies. "+
				"A customer handing over money — before the product is complete — "+
				"is the only truly honest signal in the %s space. %s", cat, lesson),
		HowToApply: fmt.Sprintf(
			"Before rebuilding %s, identify 5 target customers in %s who would pay today — "+
				"not 'when the product is ready', not 'in principle', but this week, for a manual "+
				"version of the solution. If 5 people won't pay for a human doing the job, the software "+
				"version won't change that. %s",
			f.Name, f.Market, apply),
	}
}

// Archetype 3 contrasts with the startup's likely undefined or expensive
// acquisition channel.
func channelOwned(f Fields, cat, raisedStr, activeStr string, flags signalFlags) model.CompetitorArchetype {
	bigCompNote := fmt.Sprintf(
		"In the %s market in %s, no amount of product quality compensates "+
			"for the wrong distribution strategy. This player proved it.", cat, f.Market)
	if flags.BigComp {
		bigCompNote = fmt.Sprintf(
			"When a larger competitor entered the %s space, this player was protected "+
				"because its distribution channel was owned, not rented — the competitor "+
				"couldn't copy the channel relationship the way it could copy features.", cat)
	}

	channelType := ChannelFor(cat)

	lesson := fmt.Sprintf("The %s that %s spent suggests time was available to build distribution. The question is whether it was prioritised.", activeStr, f.Name)

	apply := "If no distribution partner is available, the go-to-market must be rethought before a line of code is written."
	if f.FundingDisclosed() {
		apply = "If no such partner exists, that absence is itself a signal — distribution-resistant markets require either a very long runway or a very viral product mechanic."
	}

	return model.CompetitorArchetype{
		Name: fmt.Sprintf("The Channel-Owned %s Entrant", cat),
		Outcome: fmt.Sprintf(
			"Acquired its first 100 paying customers in %s at near-zero acquisition cost "+
				"by owning its distribution channel before shipping product", f.Market),
		WhySucceeded: fmt.Sprintf(
			"This competitor spent the first 60 days of its existence securing "+
				"%s — before writing a single line of product code. "+
				"By launch day, 50 qualified, warm leads were already waiting. "+
				"They never ran a paid ad. They never hired a sales team before achieving repeatable, "+
				"founder-led revenue. %s", channelType, bigCompNote),
		KeyLesson: fmt.Sprintf(
			"Distribution is a strategy, not a tactic. In %s, the company that owns "+
				"a distribution channel — whether through partnerships, developer communities, "+
				"platform integrations, or earned content — beats the company with a better "+
				"product every time at the same funding level. %s", cat, lesson),
		HowToApply: fmt.Sprintf(
			"Before the revived %s builds anything, map the full distribution landscape "+
				"in %s: who already has the daily attention of the target %s customer? "+
				"What integration, partnership, or community could deliver customers without paid acquisition? "+
				"Specifically for %s's space: %s is the distribution vector worth exploring first. "+
				"Close that partnership before the product ships. %s",
			f.Name, f.Market, cat, f.Name, channelType, apply),
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
