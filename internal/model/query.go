package model

// ChatRequest represents one conversational search message
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

// ChatResponse represents the reply to a conversational search message
type ChatResponse struct {
	SessionID string    `json:"session_id"`
	Reply     string    `json:"reply"`
	Notice    string    `json:"notice,omitempty"`
	Results   []Listing `json:"results"`
	Total     int       `json:"total"`
	LiveData  bool      `json:"live_data"`
	Location  *Location `json:"location,omitempty"`
	Took      int64     `json:"took_ms"` // Response time in milliseconds
}

// ResetRequest restarts a conversation
type ResetRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// ListingFilters represents the declarative filter panel state
type ListingFilters struct {
	LocationCity  string   `json:"location_city,omitempty"`
	LocationState string   `json:"location_state,omitempty"`
	VibeIDs       []string `json:"vibe_ids,omitempty"`
	PriceMin      *int     `json:"price_min,omitempty"`
	PriceMax      *int     `json:"price_max,omitempty"`
	MinBedrooms   *int     `json:"min_bedrooms,omitempty"`
	MinBathrooms  *int     `json:"min_bathrooms,omitempty"`
	SqftMin       *int     `json:"sqft_min,omitempty"`
	SqftMax       *int     `json:"sqft_max,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	PropertyType  string   `json:"property_type,omitempty"`
}

// FilterRequest narrows a session's active result set
type FilterRequest struct {
	SessionID string         `json:"session_id"`
	Filters   ListingFilters `json:"filters"`
}

// FilterResponse represents a narrowed result set
type FilterResponse struct {
	SessionID string    `json:"session_id"`
	Results   []Listing `json:"results"`
	Total     int       `json:"total"`
}
