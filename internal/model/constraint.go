package model

// Location is a resolved city/state pair. An empty State means no state
// code was found.
type Location struct {
	City  string `json:"city"`
	State string `json:"state,omitempty"`
}

// Constraints represents the structured conditions extracted from one
// utterance. It is rebuilt per utterance and never persisted.
type Constraints struct {
	MinPrice *int `json:"min_price,omitempty"`
	MaxPrice *int `json:"max_price,omitempty"`

	// Bedrooms is an exact-match requirement from an explicit "N bed"
	// mention. MinBedrooms is a lower bound from size words
	// (bigger/larger/spacious). Both may be set; both are enforced.
	Bedrooms    *int `json:"bedrooms,omitempty"`
	MinBedrooms int  `json:"min_bedrooms,omitempty"`

	Affordable bool `json:"affordable,omitempty"`
	Luxury     bool `json:"luxury,omitempty"`

	Location *Location `json:"location,omitempty"`

	// VibeKeywords are taxonomy keywords found in the utterance text.
	VibeKeywords []string `json:"vibe_keywords,omitempty"`
}

// Conversation is the per-session context carried across utterances.
// It is mutated only by the chat service, which takes it by value and
// returns the updated copy.
type Conversation struct {
	Utterances []string  `json:"utterances"`
	Location   *Location `json:"location,omitempty"`
	LiveData   bool      `json:"live_data"`
}
