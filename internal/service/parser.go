package service

import (
	"regexp"
	"strconv"
	"strings"

	"spaceai/internal/model"
)

// Default bounds applied by the qualitative price words when the
// utterance carries no explicit figure.
const (
	defaultAffordableMax = 2000
	defaultLuxuryMin     = 4000
)

// sizeBedroomMin is the bedroom lower bound implied by bigger/larger/spacious.
const sizeBedroomMin = 2

// priceRule is one named explicit-price pattern. Rules run in the order
// they are listed; a later rule overwrites bounds set by an earlier one,
// and qualitative words only ever fill bounds that are still unset.
// That makes the precedence explicit: range beats under/over, and any
// explicit figure beats affordable/luxury defaults.
type priceRule struct {
	name  string
	re    *regexp.Regexp
	apply func(c *model.Constraints, m []string)
}

var priceRules = []priceRule{
	{
		name: "under",
		re:   regexp.MustCompile(`(?i)(?:under|below)\s*\$?\s*(\d+)\s*(k)?`),
		apply: func(c *model.Constraints, m []string) {
			if v, ok := parseAmount(m[1], m[2]); ok {
				c.MaxPrice = &v
			}
		},
	},
	{
		name: "over",
		re:   regexp.MustCompile(`(?i)(?:over|above)\s*\$?\s*(\d+)\s*(k)?`),
		apply: func(c *model.Constraints, m []string) {
			if v, ok := parseAmount(m[1], m[2]); ok {
				c.MinPrice = &v
			}
		},
	},
	{
		name: "range",
		re:   regexp.MustCompile(`(?i)\$?\s*(\d+)\s*(k)?\s*(?:[-\x{2013}\x{2014}]|to)\s*\$?\s*(\d+)\s*(k)?`),
		apply: func(c *model.Constraints, m []string) {
			lo, okLo := parseAmount(m[1], m[2])
			hi, okHi := parseAmount(m[3], m[4])
			if okLo && okHi {
				c.MinPrice = &lo
				c.MaxPrice = &hi
			}
		},
	},
}

var bedroomRe = regexp.MustCompile(`(?i)(\d+)\s*bed`)

// ConstraintParser turns one free-text utterance into a partial
// constraint set using deterministic lexical rules.
type ConstraintParser struct {
	vibes *VibeTaxonomy
}

// NewConstraintParser creates a parser backed by the given taxonomy.
func NewConstraintParser(vibes *VibeTaxonomy) *ConstraintParser {
	return &ConstraintParser{vibes: vibes}
}

// Parse extracts price bounds, bedroom requirements, qualitative flags
// and vibe keywords from the utterance. Rules fire independently;
// several may match the same utterance.
func (p *ConstraintParser) Parse(utterance string) *model.Constraints {
	c := &model.Constraints{}
	lower := strings.ToLower(utterance)

	for _, rule := range priceRules {
		if m := rule.re.FindStringSubmatch(utterance); m != nil {
			rule.apply(c, m)
		}
	}

	if containsAny(lower, "affordable", "budget", "cheap") {
		c.Affordable = true
		if c.MaxPrice == nil {
			v := defaultAffordableMax
			c.MaxPrice = &v
		}
	}
	if containsAny(lower, "luxury", "upscale", "premium") {
		c.Luxury = true
		if c.MinPrice == nil {
			v := defaultLuxuryMin
			c.MinPrice = &v
		}
	}

	if m := bedroomRe.FindStringSubmatch(utterance); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			c.Bedrooms = &n
		}
	}
	if containsAny(lower, "bigger", "larger", "spacious") {
		c.MinBedrooms = sizeBedroomMin
	}

	if p.vibes != nil {
		c.VibeKeywords = p.vibes.KeywordsIn(utterance)
	}

	return c
}

// parseAmount converts a digit string with an optional k suffix into a
// dollar amount. A number that does not fit an int is treated as no
// match.
func parseAmount(digits, suffix string) (int, bool) {
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	if suffix != "" {
		v *= 1000
	}
	return v, true
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
