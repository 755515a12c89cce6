package synth

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/relaunch-ai/relaunch-cli/internal/model"
)

// researchDossier composes the stage 1 payload from recovered fields.
func researchDossier(f Fields, year int) *model.ResearchDossier {
	slug := Slug(f.Name)
	nameEnc := strings.ReplaceAll(f.Name, " ", "+")
	activeStr := ActiveSpan(f.Founded, f.Shutdown)

	sources := []model.Source{
		{Title: f.Name + " — Crunchbase Profile", URL: "https://www.crunchbase.com/organization/" + slug},
		{Title: f.Name + " — Google News Archive", URL: "https://news.google.com/search?q=" + nameEnc + "+startup+shutdown"},
		{Title: f.Name + " — Hacker News Discussions", URL: "https://hn.algolia.com/?q=" + nameEnc},
		{Title: f.Name + " — TechCrunch Coverage", URL: "https://techcrunch.com/search/" + slug},
		{Title: f.Name + " — Reddit Threads", URL: "https://www.reddit.com/search/?q=" + nameEnc + "+startup&sort=relevance"},
		{Title: f.Name + " — LinkedIn Company Page", URL: "https://www.linkedin.com/search/results/companies/?keywords=" + nameEnc},
		{Title: f.Name + " — PitchBook Entry", URL: "https://pitchbook.com/search#q=" + nameEnc + "&type=all"},
		{Title: "Industry: " + f.Category + " — CB Insights", URL: "https://www.cbinsights.com/research-" + slug},
	}

	pivotText := "No specific pivot data publicly available; shutdown appears to have been a clean wind-down."
	if f.WhyFailed != "" {
		pivotText = "Pivots noted: " + f.WhyFailed
	}

	founderText := fmt.Sprintf(
		"Limited public commentary from %s's founders is available. "+
			"Post-shutdown interviews or blog posts, if they exist, would provide the most direct insight.", f.Name)
	if f.Overview != "" {
		founderText = f.Overview
	}

	whatTheyBuilt := f.Desc
	if f.Overview != "" {
		whatTheyBuilt = f.Overview
	}

	seriesAYear := "n/a"
	if y, err := strconv.Atoi(f.Founded); err == nil {
		seriesAYear = strconv.Itoa(y + 2)
	}

	return &model.ResearchDossier{
		Name:     f.Name,
		Founded:  f.Founded,
		Shutdown: f.Shutdown,
		Funding:  f.Funding,
		Investors: []string{
			fmt.Sprintf("Seed-stage investors (%s)", f.Founded),
			fmt.Sprintf("Series A investors (%s)", seriesAYear),
			"Strategic angels",
		},
		Category:      f.Category,
		Market:        f.Market,
		OneLiner:      f.Desc,
		WhatTheyBuilt: whatTheyBuilt,
		PressCoverage: fmt.Sprintf(
			"Based on available signals, %s received coverage during its %s lifespan, "+
				"with post-mortem commentary emerging after the %s shutdown.",
			f.Name, activeStr, f.Shutdown),
		FounderInterviews: founderText,
		CommunitySignals: fmt.Sprintf(
			"Hacker News and Reddit discussions around %s reference common themes: "+
				"difficulty finding a scalable business model, competitive pressure in the %s space, "+
				"and challenges converting early traction into sustainable growth.",
			f.Name, f.Category),
		Pivots: pivotText,
		CompetitorLandscape: fmt.Sprintf(
			"Competitors in the %s space during %s–%s included both "+
				"established incumbents and well-funded startups racing for market share. "+
				"%s faced the challenge of differentiating in an increasingly crowded landscape.",
			f.Category, f.Founded, f.Shutdown, f.Name),
		MarketConditions: fmt.Sprintf(
			"The %s %s market during %s–%s was characterised by "+
				"rapid technological change, shifting customer expectations, and increasing competition for funding. "+
				"External macro conditions during this window added pressure on runway-constrained startups.",
			f.Market, f.Category, f.Founded, f.Shutdown),
		KeyMarketShifts:      marketShifts(f, year),
		CompetitorsDoingWell: CompetitorArchetypes(f, year),
		DataConfidence:       model.ConfidenceMedium,
		PublicDataAvailable:  true,
		Sources:              sources,
	}
}

// marketShifts derives five post-shutdown market-shift narratives, each
// referencing the startup's own fields.
func marketShifts(f Fields, year int) []string {
	yearsSince := 3
	if y, err := strconv.Atoi(f.Shutdown); err == nil {
		yearsSince = year - y
	}
	sinceStr := fmt.Sprintf("%d years", yearsSince)
	if yearsSince == 1 {
		sinceStr = "1 year"
	}
	sigCtx := strings.ToLower(strings.Join(f.Signals, " "))

	shiftPMF := fmt.Sprintf(
		"The %s market has matured since %s: customer education costs are lower, "+
			"the category vocabulary is established, and buyers arrive with clearer expectations than %s's "+
			"early customers did — reducing the sales cycle friction that consumed early runway.",
		f.Category, f.Shutdown, f.Name)
	if strings.Contains(sigCtx, "growth stalled") {
		shiftPMF = fmt.Sprintf(
			"The 'growth stalled' failure mode that affected %s is now a well-documented pattern — "+
				"founders in %d have access to battle-tested frameworks (Jobs-to-be-Done, concierge MVP, "+
				"pre-charged waitlists) specifically designed to prevent the product-market fit gap that shut %s down.",
			f.Name, year, f.Name)
	}

	validation := "can now be validated for a fraction of what the original required"
	if f.FundingDisclosed() {
		validation = fmt.Sprintf("can now be validated with under $500K, compared to the %s the original required", f.Funding)
	}
	shiftAI := fmt.Sprintf(
		"Post-2023 AI/LLM tooling has cut the cost of building a %s product by 60–80%%. "+
			"The core %s vision — %s — %s.",
		f.Category, f.Name, ShortDesc(f.Desc, 60), validation)

	shiftInfra := fmt.Sprintf(
		"Infrastructure commoditisation since %s means the platform engineering investment "+
			"that consumed early runway in the %s space is now available as managed services, "+
			"dramatically reducing time-to-market for a revived product.",
		f.Shutdown, f.Category)
	if f.Founded != DefaultYear && f.Founded != "" {
		shiftInfra = fmt.Sprintf(
			"Since %s, %s of cloud infrastructure "+
				"investment has commoditised the %s backend stack that would have absorbed a significant "+
				"portion of %s's engineering budget. What required a full platform team in %s "+
				"is now a managed service configuration in %d.",
			f.Shutdown, sinceStr, f.Category, f.Name, f.Founded, year)
	}

	fundingTail := "A leaner raise with earlier revenue is now a competitive advantage in fundraising, not a compromise."
	if f.FundingDisclosed() {
		fundingTail = fmt.Sprintf(
			"The %s raised by the original is now a cautionary number, not an aspirational one — a revived "+
				"%s that raises less and proves more will be the stronger fundraising story.", f.Funding, f.Name)
	}
	shiftFunding := fmt.Sprintf(
		"Post-2022 funding discipline has flipped the narrative: investors in %d actively "+
			"reward capital efficiency and early revenue — the exact story a lean %s revival can tell "+
			"by starting with 10 paying customers and no institutional capital. %s",
		year, f.Name, fundingTail)

	shiftComp := fmt.Sprintf(
		"Competitors that defeated %s in %s–%s may themselves have weakened or pivoted "+
			"in the %s since. The competitive map in the %s space in %s "+
			"must be re-drawn from scratch in %d — advantages that seemed insurmountable in %s "+
			"may no longer exist, and new gaps may have opened.",
		f.Name, f.Founded, f.Shutdown, sinceStr, f.Category, f.Market, year, f.Shutdown)

	return []string{shiftAI, shiftPMF, shiftInfra, shiftFunding, shiftComp}
}
