package service

import (
	"strings"

	"spaceai/internal/model"
	"spaceai/internal/utils"
)

// Relative price thresholds used by the qualitative flags, independent
// of the numeric bounds the same words set in the parser.
const (
	affordableCeiling = 3000
	luxuryFloor       = 4000
)

// ListingMatcher evaluates a single listing against a constraint set
// plus the raw utterance. Matching is boolean; there is no relevance
// score.
type ListingMatcher struct{}

// NewListingMatcher creates a listing matcher.
func NewListingMatcher() *ListingMatcher {
	return &ListingMatcher{}
}

// Match reports whether the listing survives every exclusion and shows
// at least one inclusion signal: a lexical keyword hit, or any of the
// qualitative affordable/luxury/bigger flags on its own.
func (m *ListingMatcher) Match(listing model.Listing, c *model.Constraints, utterance string) bool {
	if !m.matchesLocation(listing, c.Location) {
		return false
	}

	if c.Affordable && listing.Price > affordableCeiling {
		return false
	}
	if c.Luxury && listing.Price < luxuryFloor {
		return false
	}
	if c.MaxPrice != nil && listing.Price > *c.MaxPrice {
		return false
	}
	if c.MinPrice != nil && listing.Price < *c.MinPrice {
		return false
	}
	if c.MinBedrooms > 0 && listing.Bedrooms < c.MinBedrooms {
		return false
	}
	if c.Bedrooms != nil && listing.Bedrooms != *c.Bedrooms {
		return false
	}

	return m.matchesKeywords(listing, c, utterance) ||
		c.Affordable || c.Luxury || c.MinBedrooms > 0
}

// matchesLocation enforces the resolved location. The city must appear
// in the listing's location text. A state is only enforced when the
// listing carries at least one signal a state can be derived from;
// without one the constraint is skipped rather than producing false
// negatives on incomplete provider data.
func (m *ListingMatcher) matchesLocation(listing model.Listing, loc *model.Location) bool {
	if loc == nil || loc.City == "" {
		return true
	}

	listingLoc := strings.ToLower(listing.Location)
	if !strings.Contains(listingLoc, strings.ToLower(loc.City)) {
		return false
	}

	if loc.State == "" {
		return true
	}
	state := strings.ToLower(loc.State)
	address := strings.ToLower(listing.Address)
	addressState := strings.ToLower(utils.StateCode(listing.Address))
	providerState := strings.ToLower(listing.StateCode)

	locationHasState := strings.Contains(listingLoc, state)
	matchesState := locationHasState ||
		(address != "" && strings.Contains(address, state)) ||
		(addressState != "" && addressState == state) ||
		(providerState != "" && providerState == state)
	hasReliableState := locationHasState || addressState != "" || providerState != ""

	if !matchesState && hasReliableState {
		return false
	}
	return true
}

// matchesKeywords tests every utterance token longer than two
// characters for substring containment in the listing's combined text,
// and any matched vibe keyword against the mood tags.
func (m *ListingMatcher) matchesKeywords(listing model.Listing, c *model.Constraints, utterance string) bool {
	searchText := strings.ToLower(strings.Join([]string{
		listing.Title,
		strings.Join(listing.Mood, " "),
		strings.Join(listing.Colors, " "),
		listing.Vibe,
		strings.Join(listing.Features, " "),
		listing.Location,
		listing.Type,
	}, " "))

	for _, token := range utils.Tokenize(utterance) {
		if strings.Contains(searchText, token) {
			return true
		}
	}

	for _, kw := range c.VibeKeywords {
		for _, mood := range listing.Mood {
			if strings.Contains(strings.ToLower(mood), kw) {
				return true
			}
		}
	}
	return false
}
