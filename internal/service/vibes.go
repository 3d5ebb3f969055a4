package service

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// VibeOption is a named qualitative style category mapped to the
// keywords that signal it.
type VibeOption struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}

// DefaultVibes returns the built-in taxonomy.
func DefaultVibes() []VibeOption {
	return []VibeOption{
		{ID: "bright", Label: "Bright & Airy", Keywords: []string{"bright", "airy", "light", "sunny"}},
		{ID: "cozy", Label: "Cozy & Intimate", Keywords: []string{"cozy", "warm", "intimate", "comfortable"}},
		{ID: "modern", Label: "Modern & Minimal", Keywords: []string{"modern", "minimalist", "sleek", "contemporary"}},
		{ID: "colorful", Label: "Colorful & Bold", Keywords: []string{"colorful", "vibrant", "bold", "creative"}},
		{ID: "warm", Label: "Warm & Inviting", Keywords: []string{"warm", "inviting", "hygge", "comfortable"}},
		{ID: "coastal", Label: "Coastal & Fresh", Keywords: []string{"coastal", "breezy", "fresh", "ocean"}},
	}
}

// VibeTaxonomy is a fixed id -> keywords lookup. It is never mutated
// after construction.
type VibeTaxonomy struct {
	options []VibeOption
	byID    map[string]VibeOption
}

// NewVibeTaxonomy builds a taxonomy from the given options.
func NewVibeTaxonomy(options []VibeOption) *VibeTaxonomy {
	byID := make(map[string]VibeOption, len(options))
	for _, opt := range options {
		byID[opt.ID] = opt
	}
	return &VibeTaxonomy{options: options, byID: byID}
}

// LoadVibes reads a taxonomy from a JSON file so the vibe set can be
// extended without a code change.
func LoadVibes(path string) ([]VibeOption, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vibes file: %w", err)
	}
	var options []VibeOption
	if err := json.Unmarshal(data, &options); err != nil {
		return nil, fmt.Errorf("failed to parse vibes file: %w", err)
	}
	return options, nil
}

// Options returns the full option list in definition order.
func (t *VibeTaxonomy) Options() []VibeOption {
	return t.options
}

// Keywords returns the keyword set for a vibe id, or nil when the id is
// unknown.
func (t *VibeTaxonomy) Keywords(id string) []string {
	return t.byID[id].Keywords
}

// MatchesMood reports whether any keyword of any selected vibe
// substring-matches any of the listing's mood tags.
func (t *VibeTaxonomy) MatchesMood(vibeIDs []string, moods []string) bool {
	for _, id := range vibeIDs {
		for _, kw := range t.Keywords(id) {
			for _, mood := range moods {
				if strings.Contains(strings.ToLower(mood), kw) {
					return true
				}
			}
		}
	}
	return false
}

// KeywordsIn returns the taxonomy keywords present in the utterance,
// in definition order and without duplicates.
func (t *VibeTaxonomy) KeywordsIn(utterance string) []string {
	lower := strings.ToLower(utterance)
	seen := make(map[string]bool)
	var found []string
	for _, opt := range t.options {
		for _, kw := range opt.Keywords {
			if !seen[kw] && strings.Contains(lower, kw) {
				seen[kw] = true
				found = append(found, kw)
			}
		}
	}
	return found
}
