package model

// PlanStep is one row of the 90-day plan.
type PlanStep struct {
	Week   string `json:"week"`
	Action string `json:"action"`
}

// GTMStrategy is the go-to-market section of the revival plan.
type GTMStrategy struct {
	PrimaryChannel string     `json:"primary_channel"`
	WhyChannel     string     `json:"why_channel"`
	NinetyDayPlan  []PlanStep `json:"90_day_plan"`
	WhatNotToDo    []string   `json:"what_not_to_do"`
	PricingModel   string     `json:"pricing_model"`
}

// RiskEntry pairs a revival risk with its mitigation.
type RiskEntry struct {
	Risk       string `json:"risk"`
	Mitigation string `json:"mitigation"`
}

// RevivalPlan is the stage 3 payload: the relaunch strategy.
type RevivalPlan struct {
	CoreInsight               string      `json:"core_insight"`
	RevisedName               string      `json:"revised_name"`
	RevisedICP                string      `json:"revised_icp"`
	RepositioningStatement    string      `json:"repositioning_statement"`
	GTMStrategy               GTMStrategy `json:"gtm_strategy"`
	CompetitiveLandscapeToday string      `json:"competitive_landscape_today"`
	RiskRegister              []RiskEntry `json:"risk_register"`
}
