package synth

import (
	"fmt"

	"github.com/relaunch-ai/relaunch-cli/internal/model"
)

// revivalPlan composes the stage 3 payload: the relaunch strategy with GTM,
// 90-day plan, and risk register.
func revivalPlan(f Fields, year int) *model.RevivalPlan {
	return &model.RevivalPlan{
		CoreInsight: fmt.Sprintf(
			"The problem %s was trying to solve — %s — "+
				"is likely still real and still unsolved. "+
				"The failure was in execution, timing, and business model, not in the underlying need.",
			f.Name, ShortDesc(f.Desc, 100)),
		RevisedName: fmt.Sprintf("%s (%d)", f.Name, year),
		RevisedICP: fmt.Sprintf(
			"Early adopters and power users in the %s space who have already demonstrated "+
				"willingness to pay for solutions to the problem %s was solving — "+
				"specifically in the %s market, where the timing may now be more favourable.",
			f.Category, f.Name, f.Market),
		RepositioningStatement: fmt.Sprintf(
			"The new %s: same insight, leaner model, built in public with customers from day one.", f.Name),
		GTMStrategy: model.GTMStrategy{
			PrimaryChannel: fmt.Sprintf(
				"Direct outreach to the top 50 potential customers in the %s space who experienced the problem firsthand",
				f.Category),
			WhyChannel: fmt.Sprintf(
				"The fastest path to PMF validation is talking directly to people who already feel the pain. "+
					"In the %s space, these customers are identifiable and reachable without paid acquisition. "+
					"Revenue from 10 paying customers is worth more than 10,000 free signups at this stage.",
				f.Category),
			NinetyDayPlan: []model.PlanStep{
				{Week: "1–2", Action: fmt.Sprintf(
					"Interview 20 potential customers who experienced the exact problem %s was solving. "+
						"Record every session. Document the precise language they use — this becomes your copy and positioning.",
					f.Name)},
				{Week: "3–4", Action: "Build a concierge MVP — solve the problem manually for 3–5 paying customers " +
					"before writing a line of code. Charge real money from day one. " +
					"Willingness to pay is the only signal that matters at this stage."},
				{Week: "5–6", Action: fmt.Sprintf(
					"Scope the minimum product required to serve those 3–5 customers better than any existing "+
						"alternative in the %s space. Build only that feature set — nothing else.",
					f.Category)},
				{Week: "7–8", Action: fmt.Sprintf(
					"Expand to 10–15 paying customers in the %s market. Instrument weekly NPS, churn, and "+
						"expansion revenue. If NPS < 40, do not expand further — fix the product first.",
					f.Market)},
				{Week: "9–10", Action: fmt.Sprintf(
					"Study the %s competitors identified in the research dossier. Map exactly what they do better. "+
						"Build a clear answer to the question: 'Why would a customer choose us over them today?'",
					f.Category)},
				{Week: "11–12", Action: fmt.Sprintf(
					"With 15+ paying customers, positive NPS, and a clear competitive answer, approach 3 angels "+
						"or pre-seed funds: '%s failed because of X. We solved X. Here is the proof — 15 paying customers in 90 days.'",
					f.Name)},
			},
			WhatNotToDo: []string{
				"Do NOT raise more than $500K before achieving 10 paying customers — runway should buy validation, not headcount.",
				fmt.Sprintf("Do NOT rebuild the original %s product feature-for-feature. Start with the core insight only.", f.Name),
				"Do NOT hire a sales team before you have a repeatable, founder-led sales motion.",
				fmt.Sprintf("Do NOT ignore the reasons %s failed — run the autopsy findings as a checklist every 30 days.", f.Name),
				"Do NOT optimise for press coverage before achieving PMF. Stay in stealth until the product speaks for itself.",
			},
			PricingModel: fmt.Sprintf(
				"Value-based pricing anchored to the economic outcome the customer gets — not a cost-plus or competitor-matching model. "+
					"Start with a flat monthly fee (%s benchmark for %s: $99–$499/month for SMB, $1K–$5K/month for enterprise). "+
					"Annual upfront pricing from day one to extend runway and signal commitment from customers.",
				f.Market, f.Category),
		},
		CompetitiveLandscapeToday: fmt.Sprintf(
			"The %s market has shifted materially since %s's %s shutdown. "+
				"Post-2023 AI tooling has reduced the cost of building in this space by 60–80%%, meaning the original %s vision "+
				"is likely achievable for a fraction of %s. Some competitors that existed when %s shut down may have "+
				"weakened or pivoted; new players have likely entered. "+
				"A full competitive audit in %d — mapping every current solution against the original problem — "+
				"is essential before committing to a positioning for the revived product.",
			f.Category, f.Name, f.Shutdown, f.Name, f.Funding, f.Name, year),
		RiskRegister: []model.RiskEntry{
			{
				Risk: fmt.Sprintf("The original failure repeats — spending %s-equivalent capital without finding PMF", f.Funding),
				Mitigation: "Hard cap on spending before PMF: no more than $250K before 10 paying customers. " +
					"If you hit that cap, stop and re-evaluate the thesis — don't raise more.",
			},
			{
				Risk: fmt.Sprintf("The market has moved on since %s and the problem is now solved by an incumbent", f.Shutdown),
				Mitigation: "Before building anything, spend 2 weeks mapping every current solution to the problem. " +
					"If an incumbent now solves it adequately, the insight is dead — find an adjacent problem.",
			},
			{
				Risk: "Founder credibility gap — the market associates the name with failure",
				Mitigation: fmt.Sprintf(
					"Lead with the lessons, not the brand. A 'Built on the ashes of %s' narrative is actually "+
						"a powerful signal of self-awareness if the pitch acknowledges exactly what went wrong and why it's fixed now.",
					f.Name),
			},
		},
	}
}
