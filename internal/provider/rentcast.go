package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"spaceai/internal/model"
)

// AuthError marks a provider rejection that the user can fix by
// checking their API key (401/403 or an "inactive" subscription body).
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("provider auth error (status %d): %s", e.Status, e.Message)
}

// IsAuthError reports whether err is (or wraps) a provider auth error.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// Config holds the RentCast client configuration.
type Config struct {
	APIKey  string
	APIBase string
	Limit   int
	Timeout time.Duration
}

// RentCastClient fetches rental listings from the RentCast API. A
// single attempt per search, no retries; the caller decides what to do
// with a failure.
type RentCastClient struct {
	cfg        Config
	httpClient *http.Client

	// resolveLocation derives a city/state from free text when the
	// caller supplies no locality hint. Injected to keep this package
	// free of the query-engine dependency.
	resolveLocation func(query string) *model.Location
}

// NewRentCastClient creates a RentCast client.
func NewRentCastClient(cfg Config, resolveLocation func(string) *model.Location) *RentCastClient {
	if cfg.APIBase == "" {
		cfg.APIBase = "https://api.rentcast.io/v1"
	}
	if cfg.Limit <= 0 {
		cfg.Limit = 20
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &RentCastClient{
		cfg:             cfg,
		httpClient:      &http.Client{Timeout: cfg.Timeout},
		resolveLocation: resolveLocation,
	}
}

// rentcastListing mirrors the fields of a RentCast rental record this
// service consumes.
type rentcastListing struct {
	ID               string  `json:"id"`
	FormattedAddress string  `json:"formattedAddress"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	Price            float64 `json:"price"`
	Bedrooms         int     `json:"bedrooms"`
	Bathrooms        float64 `json:"bathrooms"`
	SquareFootage    int     `json:"squareFootage"`
	PropertyType     string  `json:"propertyType"`
	ListingURL       string  `json:"listingUrl"`
}

// FetchListings queries the rental listings endpoint for the location
// named in the hint, or derived from the query when the hint is nil.
// An empty result slice is a valid "no matches" answer, not an error.
func (c *RentCastClient) FetchListings(ctx context.Context, query string, hint *model.Location) ([]model.Listing, error) {
	loc := hint
	if loc == nil && c.resolveLocation != nil {
		loc = c.resolveLocation(query)
	}
	if loc == nil || loc.City == "" {
		// Nothing to geocode against; the provider needs a locality.
		return []model.Listing{}, nil
	}

	params := url.Values{}
	params.Set("city", loc.City)
	if loc.State != "" {
		params.Set("state", loc.State)
	}
	params.Set("status", "Active")
	params.Set("limit", strconv.Itoa(c.cfg.Limit))

	endpoint := c.cfg.APIBase + "/listings/rental/long-term?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden ||
			strings.Contains(strings.ToLower(string(body)), "inactive") {
			return nil, &AuthError{Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		}
		return nil, fmt.Errorf("provider returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var raw []rentcastListing
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("malformed provider response: %w", err)
	}

	listings := make([]model.Listing, 0, len(raw))
	for _, r := range raw {
		listings = append(listings, mapListing(r))
	}
	return listings, nil
}

// mapListing converts a provider record into the internal listing
// shape. Provider records carry no mood/vibe metadata; the raw address
// and state fields are kept for location disambiguation.
func mapListing(r rentcastListing) model.Listing {
	title := r.FormattedAddress
	if title == "" {
		title = fmt.Sprintf("%d bed %s in %s", r.Bedrooms, strings.ToLower(r.PropertyType), r.City)
	}
	return model.Listing{
		ID:        r.ID,
		Title:     title,
		Location:  fmt.Sprintf("%s, %s", r.City, r.State),
		Price:     int(r.Price),
		Bedrooms:  r.Bedrooms,
		Bathrooms: int(r.Bathrooms),
		Sqft:      r.SquareFootage,
		Type:      strings.ToLower(r.PropertyType),
		Address:   r.FormattedAddress,
		StateCode: r.State,
		URL:       r.ListingURL,
	}
}
