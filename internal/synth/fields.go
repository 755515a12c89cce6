package synth

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Documented defaults for fields the context does not yield.
const (
	DefaultName     = "This Startup"
	DefaultYear     = "Unknown"
	DefaultFunding  = "Undisclosed"
	DefaultCategory = "Technology"
	DefaultMarket   = "Global"
)

// Fields is the flat mapping recovered from a formatted context block.
type Fields struct {
	Name      string
	Founded   string
	Shutdown  string
	Funding   string
	Category  string
	Market    string
	Desc      string
	Overview  string
	WhyFailed string
	Signals   []string
}

// FieldRule is one entry in the ordered extraction table: the first pattern
// that matches wins. Each pattern must have exactly one capture group.
type FieldRule struct {
	Field    string
	Patterns []*regexp.Regexp
}

// FieldRules is the extraction table. Rules tolerate two encodings of the
// same facts: the labeled-line context format produced by the formatter, and
// the structured-key format of upstream stage payloads embedded in later
// stage contexts. Precedence within each rule is fixed; category is the one
// field where the structured key outranks the labeled line, because source
// titles like "Industry: X — CB Insights" pollute the line format.
var FieldRules = []FieldRule{
	{Field: "founded", Patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)Active:\s*(\d{4})`),
		regexp.MustCompile(`(?i)"founded"\s*:\s*"([^"]+)"`),
	}},
	{Field: "shutdown", Patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)Active:\s*\d{4}\s*[→\-]+\s*(\d{4})`),
		regexp.MustCompile(`(?i)"shutdown"\s*:\s*"([^"]+)"`),
	}},
	{Field: "funding", Patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)Funding:\s*([^\n]+)`),
		regexp.MustCompile(`(?i)"funding"\s*:\s*"([^"]+)"`),
	}},
	{Field: "category", Patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)"category"\s*:\s*"([^"]+)"`),
		regexp.MustCompile(`(?i)Industry:\s*([^—\n"]+)`),
	}},
	{Field: "market", Patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)Market:\s*([^\n]+)`),
		regexp.MustCompile(`(?i)"market"\s*:\s*"([^"]+)"`),
	}},
	{Field: "desc", Patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)What it did:\s*([^\n]+)`),
		regexp.MustCompile(`(?i)"one_liner"\s*:\s*"([^"]+)"`),
		regexp.MustCompile(`(?i)"what_they_built"\s*:\s*"([^"]{10,200})"`),
	}},
	{Field: "overview", Patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)Founder's description.*?:\s*([^\n]+)`),
	}},
	{Field: "why_failed", Patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)Why it failed.*?:\s*([^\n]+)`),
	}},
}

// Name recovery runs outside the table: candidates need noise-word rejection
// and title casing. Most reliable pattern first.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^Startup[:\s]+([A-Za-z0-9][A-Za-z0-9\s.\-]{1,50}?)[,\s]`),
	regexp.MustCompile(`(?i)startup_name["\s:]+([A-Za-z0-9][A-Za-z0-9\s.\-]{1,50}?)"`),
	regexp.MustCompile(`(?i)"name"\s*:\s*"([A-Za-z0-9][^"]{1,50}?)"`),
}

var nameNoiseWords = map[string]bool{
	"this startup": true,
	"unknown":      true,
	"n/a":          true,
	"none":         true,
	"the startup":  true,
}

var (
	signalsLineRe = regexp.MustCompile(`(?i)Known failure signals:\s*([^\n]+)`)
	signalsJSONRe = regexp.MustCompile(`(?i)context_signals.*?(\[[^\]]*\])`)
	quotedRe      = regexp.MustCompile(`"([^"]+)"`)
	titleCaser    = cases.Title(language.English)
)

// ParseFields recovers all structured fields from a formatted context block.
// Pure: same text always yields the same mapping. Missing fields resolve to
// empty strings here; Resolve applies the documented defaults.
func ParseFields(text string) Fields {
	get := func(field string) string {
		for _, rule := range FieldRules {
			if rule.Field != field {
				continue
			}
			for _, re := range rule.Patterns {
				if m := re.FindStringSubmatch(text); m != nil {
					return strings.TrimSpace(m[1])
				}
			}
		}
		return ""
	}

	f := Fields{
		Founded:   get("founded"),
		Shutdown:  get("shutdown"),
		Funding:   get("funding"),
		Category:  get("category"),
		Market:    get("market"),
		Desc:      get("desc"),
		Overview:  get("overview"),
		WhyFailed: get("why_failed"),
		Signals:   parseSignals(text),
	}

	for _, re := range namePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := titleCaser.String(strings.TrimSpace(m[1]))
		if !nameNoiseWords[strings.ToLower(candidate)] {
			f.Name = candidate
			break
		}
	}

	return f
}

// parseSignals recovers signal tags from either the labeled-line format
// ("Known failure signals: a, b") or a structured context_signals array.
func parseSignals(text string) []string {
	if m := signalsLineRe.FindStringSubmatch(text); m != nil {
		var out []string
		for _, part := range strings.Split(m[1], ",") {
			if s := strings.TrimSpace(part); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	if m := signalsJSONRe.FindStringSubmatch(text); m != nil {
		var out []string
		for _, q := range quotedRe.FindAllStringSubmatch(m[1], -1) {
			out = append(out, q[1])
		}
		return out
	}
	return nil
}

// Resolve fills empty fields with the documented defaults. Desc falls back
// to a sentence built from the resolved name and category so every stage has
// something to reference.
func (f Fields) Resolve() Fields {
	if f.Name == "" {
		f.Name = DefaultName
	}
	if f.Founded == "" {
		f.Founded = DefaultYear
	}
	if f.Shutdown == "" {
		f.Shutdown = DefaultYear
	}
	if f.Funding == "" {
		f.Funding = DefaultFunding
	}
	if f.Category == "" {
		f.Category = DefaultCategory
	}
	if f.Market == "" {
		f.Market = DefaultMarket
	}
	if f.Desc == "" {
		f.Desc = fmt.Sprintf("%s built a product in the %s space.", f.Name, f.Category)
	}
	return f
}

// FundingDisclosed reports whether the funding descriptor names an amount.
func (f Fields) FundingDisclosed() bool {
	switch f.Funding {
	case "", DefaultFunding, DefaultYear:
		return false
	}
	return true
}

// YearsActive derives the active duration from the founding and shutdown
// years. ok is false when either year is not numeric; callers then fall back
// to a generic phrase.
func YearsActive(founded, shutdown string) (phrase string, ok bool) {
	from, err1 := strconv.Atoi(founded)
	to, err2 := strconv.Atoi(shutdown)
	if err1 != nil || err2 != nil {
		return "its operating window", false
	}
	n := to - from
	if n == 1 {
		return "1 year", true
	}
	return fmt.Sprintf("%d years", n), true
}

// ActiveSpan renders "2019–2022 (3 years)", or just the bare span when the
// years are not parseable.
func ActiveSpan(founded, shutdown string) string {
	if years, ok := YearsActive(founded, shutdown); ok {
		return fmt.Sprintf("%s–%s (%s)", founded, shutdown, years)
	}
	return fmt.Sprintf("%s–%s", founded, shutdown)
}

// ShortDesc truncates a description to max runes with an ellipsis marker.
func ShortDesc(desc string, max int) string {
	r := []rune(desc)
	if len(r) > max {
		return string(r[:max]) + "…"
	}
	return desc
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slug converts a startup name into a URL slug.
func Slug(name string) string {
	return strings.Trim(slugRe.ReplaceAllString(strings.ToLower(name), "-"), "-")
}
