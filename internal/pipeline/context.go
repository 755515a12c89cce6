package pipeline

import (
	"fmt"
	"strings"

	"github.com/relaunch-ai/relaunch-cli/internal/model"
)

// BuildContext renders the startup's inputs as a labeled-line block for
// generation prompts. The fallback synthesizer's extraction rules round-trip
// this format, so every label here has a matching rule there. Pure and
// stable: same startup, same block.
func BuildContext(st model.Startup) string {
	orDefault := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}

	parts := []string{
		fmt.Sprintf("Startup: %s", st.Name),
		fmt.Sprintf("Industry: %s", orDefault(st.Industry, "Unknown")),
		fmt.Sprintf("Market: %s", orDefault(st.Country, "Unknown")),
		fmt.Sprintf("Active: %s → %s", orDefault(st.YearFounded, "?"), orDefault(st.YearShutdown, "?")),
		fmt.Sprintf("Funding: %s", orDefault(st.FundingRange, "Unknown")),
		fmt.Sprintf("What it did: %s", st.ProductDescription),
	}
	if st.Overview != "" {
		parts = append(parts, fmt.Sprintf("Founder's description of the startup: %s", st.Overview))
	}
	if st.WhyFailed != "" {
		parts = append(parts, fmt.Sprintf("Why it failed and shut down (founder's account): %s", st.WhyFailed))
	}
	if st.FounderWhyFailed != "" {
		parts = append(parts, fmt.Sprintf("Founder's view on failure: %s", st.FounderWhyFailed))
	}
	if st.CustomerFeedback != "" {
		parts = append(parts, fmt.Sprintf("Customer feedback: %s", st.CustomerFeedback))
	}
	if st.PivotsTried != "" {
		parts = append(parts, fmt.Sprintf("Pivots attempted: %s", st.PivotsTried))
	}
	if st.WhatDifferent != "" {
		parts = append(parts, fmt.Sprintf("What they'd do differently: %s", st.WhatDifferent))
	}
	if len(st.ContextSignals) > 0 {
		parts = append(parts, fmt.Sprintf("Known failure signals: %s", strings.Join(st.ContextSignals, ", ")))
	}
	return strings.Join(parts, "\n")
}
