package service

import (
	"regexp"
	"strings"

	"spaceai/internal/model"
	"spaceai/internal/utils"
)

// knownCities is the fixed city lexicon scanned for in utterances.
// First match wins, so multi-word names come before their substrings.
var knownCities = []string{
	"dallas", "austin", "houston", "san antonio", "portland", "seattle", "denver",
	"chicago", "new york", "los angeles", "san francisco", "miami", "atlanta",
	"boston", "philadelphia", "phoenix", "san diego", "detroit", "minneapolis",
}

var displayLocationRe = regexp.MustCompile(`([^,]+),\s*([A-Z]{2})`)

// LocationResolver extracts a city/state pair from free text.
type LocationResolver struct{}

// NewLocationResolver creates a location resolver.
func NewLocationResolver() *LocationResolver {
	return &LocationResolver{}
}

// Resolve scans the utterance for a known city and a two-letter state
// code. A city found in the utterance always wins; when the utterance
// names no city the prior location carries forward unchanged; with
// neither, nil is returned.
func (r *LocationResolver) Resolve(utterance string, prior *model.Location) *model.Location {
	lower := strings.ToLower(utterance)
	state := utils.StateCode(utterance)

	for _, city := range knownCities {
		if strings.Contains(lower, city) {
			return &model.Location{City: utils.TitleCase(city), State: state}
		}
	}
	return prior
}

// FromDisplay derives a location from a provider display string of the
// form "City, ST". Provider-derived locations overwrite the carried
// context on successful provider use.
func (r *LocationResolver) FromDisplay(display string) *model.Location {
	m := displayLocationRe.FindStringSubmatch(display)
	if m == nil {
		return nil
	}
	return &model.Location{City: strings.TrimSpace(m[1]), State: m[2]}
}
