package service

import (
	"strings"

	"spaceai/internal/model"
)

// FilterService applies the declarative filter panel to a listing
// slice. It is purely functional: the same filters on the same input
// always narrow to the same output, so applying twice equals applying
// once.
type FilterService struct {
	vibes *VibeTaxonomy
}

// NewFilterService creates a filter service backed by the taxonomy.
func NewFilterService(vibes *VibeTaxonomy) *FilterService {
	return &FilterService{vibes: vibes}
}

// Apply narrows listings by every filter that is set. Listings without
// square-footage data are never excluded by the sqft range; the amenity
// filter is conjunctive — every selected amenity must substring-match
// some feature tag.
func (s *FilterService) Apply(listings []model.Listing, f model.ListingFilters) []model.Listing {
	out := []model.Listing{}
	for _, listing := range listings {
		if s.includes(listing, f) {
			out = append(out, listing)
		}
	}
	return out
}

func (s *FilterService) includes(listing model.Listing, f model.ListingFilters) bool {
	loc := strings.ToLower(listing.Location)
	if f.LocationCity != "" && !strings.Contains(loc, strings.ToLower(f.LocationCity)) {
		return false
	}
	if f.LocationState != "" && !strings.Contains(loc, strings.ToLower(f.LocationState)) {
		return false
	}

	if len(f.VibeIDs) > 0 && !s.vibes.MatchesMood(f.VibeIDs, listing.Mood) {
		return false
	}

	if f.PriceMin != nil && listing.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && listing.Price > *f.PriceMax {
		return false
	}

	if f.MinBedrooms != nil && listing.Bedrooms < *f.MinBedrooms {
		return false
	}
	if f.MinBathrooms != nil && listing.Bathrooms < *f.MinBathrooms {
		return false
	}

	if listing.Sqft > 0 {
		if f.SqftMin != nil && listing.Sqft < *f.SqftMin {
			return false
		}
		if f.SqftMax != nil && listing.Sqft > *f.SqftMax {
			return false
		}
	}

	for _, amenity := range f.Amenities {
		if !featureMatches(listing.Features, amenity) {
			return false
		}
	}

	if f.PropertyType != "" && !strings.EqualFold(listing.Type, f.PropertyType) {
		return false
	}
	return true
}

func featureMatches(features []string, amenity string) bool {
	needle := strings.ToLower(amenity)
	for _, feature := range features {
		if strings.Contains(strings.ToLower(feature), needle) {
			return true
		}
	}
	return false
}
