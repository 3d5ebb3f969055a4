package model

import (
	"database/sql/driver"
	"encoding/json"
)

// Listing represents a rental listing, either from the remote provider
// or from the seed corpus. A price of 0 means "price on request";
// bathrooms/sqft of 0 mean the field is unknown.
type Listing struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Location  string    `json:"location" db:"location"`
	Price     int       `json:"price" db:"price"`
	Mood      JSONArray `json:"mood,omitempty" db:"mood"`
	Colors    JSONArray `json:"colors,omitempty" db:"colors"`
	Vibe      string    `json:"vibe,omitempty" db:"vibe"`
	Features  JSONArray `json:"features,omitempty" db:"features"`
	Bedrooms  int       `json:"bedrooms" db:"bedrooms"`
	Bathrooms int       `json:"bathrooms,omitempty" db:"bathrooms"`
	Sqft      int       `json:"square_footage,omitempty" db:"square_footage"`
	Type      string    `json:"type" db:"property_type"`

	// Raw provider fields, used only for stricter location disambiguation.
	Address   string `json:"address,omitempty" db:"address"`
	StateCode string `json:"state_code,omitempty" db:"state_code"`

	URL string `json:"url,omitempty" db:"url"`
}

// JSONArray represents a JSON array field
type JSONArray []string

// Value implements driver.Valuer interface
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *JSONArray) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), j)
	}
	return json.Unmarshal(bytes, j)
}
