// Package render turns a fully analysed document into the relaunch landing
// page. The page is a single self-contained HTML document with inline
// styles, safe to serve or save as-is.
package render

import (
	_ "embed"
	"html/template"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/relaunch-ai/relaunch-cli/internal/model"
)

//go:embed page.html.tmpl
var pageTmpl string

var page = template.Must(template.New("page").Parse(pageTmpl))

// lensLabels pairs each autopsy dimension with its display label, in render
// order.
var lensLabels = map[string]string{
	"timing":                    "⏱ Timing",
	"market_size_monetization":  "💰 Market & Monetization",
	"pmf":                       "🎯 Product-Market Fit",
	"team_execution":            "👥 Team & Execution",
	"competition_defensibility": "⚔️ Competition",
	"external_factors":          "🌍 External Factors",
}

var ratingColors = map[string]string{
	model.RatingCritical:    "#ff4444",
	model.RatingSignificant: "#ff8c00",
	model.RatingMinor:       "#f0b429",
	model.RatingNotAFactor:  "#34d399",
}

const defaultRatingColor = "#888"

type lensCard struct {
	Label    string
	Color    string
	Rating   string
	Finding  string
	Evidence string
}

type pitchSection struct {
	Label string
	Value string
}

type pageData struct {
	Year        int
	OrigName    string
	OrigFunding string
	RevisedName string
	HeroSub     string
	Elevator    string

	Hypothesis  string
	Score       int
	LensCards   []lensCard
	KillerQuote string

	Insight     string
	ICP         string
	Reposition  string
	Channel     string
	Pricing     string
	CompToday   string
	WhatNotToDo []string

	Plan          []model.PlanStep
	Risks         []model.RiskEntry
	Top3Factors   []string
	PitchSections []pitchSection
}

// Renderer renders landing pages for analysed documents.
type Renderer struct {
	year int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithYear pins the relaunch year shown on the page.
func WithYear(year int) Option {
	return func(r *Renderer) { r.year = year }
}

// New creates a Renderer defaulting to the current year.
func New(opts ...Option) *Renderer {
	r := &Renderer{year: time.Now().Year()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces the landing page. Missing result slots degrade to empty
// sections; rendering never needs the network.
func (r *Renderer) Render(doc *model.Document) (string, error) {
	data := r.buildData(doc)
	var sb strings.Builder
	if err := page.Execute(&sb, data); err != nil {
		return "", eris.Wrap(err, "render: execute page template")
	}
	return sb.String(), nil
}

func (r *Renderer) buildData(doc *model.Document) pageData {
	research := doc.Research
	if research == nil {
		research = &model.ResearchDossier{}
	}
	revival := doc.Revival
	if revival == nil {
		revival = &model.RevivalPlan{}
	}
	deck := doc.Copy
	if deck == nil {
		deck = &model.CopyDeck{}
	}

	origName := research.Name
	if origName == "" {
		origName = doc.Startup.Name
	}
	revisedName := revival.RevisedName
	if revisedName == "" {
		revisedName = origName + " (Relaunch)"
	}

	data := pageData{
		Year:        r.year,
		OrigName:    origName,
		OrigFunding: research.Funding,
		RevisedName: revisedName,
		Elevator:    deck.ElevatorPitch,

		Score: 20,

		Insight:     revival.CoreInsight,
		ICP:         revival.RevisedICP,
		Reposition:  revival.RepositioningStatement,
		Channel:     revival.GTMStrategy.PrimaryChannel,
		Pricing:     revival.GTMStrategy.PricingModel,
		CompToday:   revival.CompetitiveLandscapeToday,
		WhatNotToDo: revival.GTMStrategy.WhatNotToDo,

		Plan:        revival.GTMStrategy.NinetyDayPlan,
		Risks:       revival.RiskRegister,
		Top3Factors: deck.AutopsySummaryCard.Top3Factors,
		KillerQuote: deck.AutopsySummaryCard.KillerQuote,
	}

	data.HeroSub = revival.RepositioningStatement
	if data.HeroSub == "" {
		data.HeroSub = revival.RevisedICP
	}

	if doc.Autopsy != nil {
		data.Hypothesis = doc.Autopsy.PrimaryFailureHypothesis
		data.Score = doc.Autopsy.OverallScore
		for _, d := range doc.Autopsy.Dimensions() {
			if d.Finding.Rating == "" && d.Finding.Finding == "" && d.Finding.Evidence == "" {
				continue
			}
			color, ok := ratingColors[d.Finding.Rating]
			if !ok {
				color = defaultRatingColor
			}
			rating := d.Finding.Rating
			if rating == "" {
				rating = "—"
			}
			data.LensCards = append(data.LensCards, lensCard{
				Label:    lensLabels[d.Key],
				Color:    color,
				Rating:   rating,
				Finding:  d.Finding.Finding,
				Evidence: d.Finding.Evidence,
			})
		}
	}

	pitch := deck.RevivalPitch
	for _, section := range []pitchSection{
		{"Problem", pitch.Problem},
		{"Solution", pitch.Solution},
		{"Market", pitch.Market},
		{"Why Now", pitch.WhyNow},
		{"Ask", pitch.Ask},
	} {
		if section.Value != "" {
			data.PitchSections = append(data.PitchSections, section)
		}
	}

	return data
}
