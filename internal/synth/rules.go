// Package synth is the deterministic fallback synthesizer: given a stage and
// the formatted document context, it recovers the startup's facts by pattern
// matching and composes a structured payload shaped like that stage's schema.
// It performs no I/O and is a pure function of its inputs.
package synth

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var rulesYAML []byte

// DimensionRule rates one failure dimension Critical when any keyword is
// present in the signal text; otherwise the dimension takes Default.
type DimensionRule struct {
	Key      string   `yaml:"key"`
	Keywords []string `yaml:"keywords"`
	Default  string   `yaml:"default"`
}

// ChannelRule maps category keywords to a distribution-channel narrative.
type ChannelRule struct {
	Keywords []string `yaml:"keywords"`
	Channel  string   `yaml:"channel"`
}

type ruleSet struct {
	Dimensions []DimensionRule `yaml:"dimensions"`
	Channels   []ChannelRule   `yaml:"channels"`
}

var rules ruleSet

func init() {
	if err := yaml.Unmarshal(rulesYAML, &rules); err != nil {
		panic(fmt.Sprintf("synth: parse embedded rules: %v", err))
	}
}

// DimensionRules returns the ordered severity rules.
func DimensionRules() []DimensionRule {
	return rules.Dimensions
}

// RateDimensions applies the severity rules to the concatenation of signal
// tags and the failure narrative. It returns a rating per dimension key.
// Same inputs always yield the same six ratings.
func RateDimensions(signals []string, narrative string) map[string]string {
	sigText := strings.ToLower(strings.Join(signals, " ") + " " + narrative)
	out := make(map[string]string, len(rules.Dimensions))
	for _, rule := range rules.Dimensions {
		out[rule.Key] = rule.Default
		for _, kw := range rule.Keywords {
			if strings.Contains(sigText, kw) {
				out[rule.Key] = "Critical"
				break
			}
		}
	}
	return out
}

// ChannelFor classifies a category string into a distribution-channel
// narrative using first-match-wins substring testing against the lowercased
// category. Unmatched categories get a generic trusted-partner channel
// parameterized by the category itself.
func ChannelFor(category string) string {
	lower := strings.ToLower(category)
	for _, rule := range rules.Channels {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Channel
			}
		}
	}
	return fmt.Sprintf("one trusted distribution partner already embedded in the %s customer's existing workflow", category)
}
