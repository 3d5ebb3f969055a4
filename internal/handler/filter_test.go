package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spaceai/internal/model"
)

func intPtr(v int) *int { return &v }

func TestFilterHandler_Apply(t *testing.T) {
	router := newTestRouter()

	t.Run("narrows a fresh session's corpus", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/filter", model.FilterRequest{
			SessionID: "panel",
			Filters:   model.ListingFilters{PriceMax: intPtr(2500)},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp model.FilterResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "panel", resp.SessionID)
		require.Len(t, resp.Results, 2)
		assert.Equal(t, "Cozy Scandinavian Retreat", resp.Results[0].Title)
		assert.Equal(t, "Bohemian Garden Cottage", resp.Results[1].Title)
	})

	t.Run("narrows chat results, not the full corpus", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/chat", model.ChatRequest{
			SessionID: "panel-after-chat", Message: "cozy house in portland",
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodPost, "/api/v1/filter", model.FilterRequest{
			SessionID: "panel-after-chat",
			Filters:   model.ListingFilters{PriceMax: intPtr(5000)},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp model.FilterResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "Cozy Scandinavian Retreat", resp.Results[0].Title)
	})

	t.Run("filtering does not alter the session", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/filter", model.FilterRequest{
			SessionID: "panel-idempotent",
			Filters:   model.ListingFilters{VibeIDs: []string{"coastal"}},
		})
		require.Equal(t, http.StatusOK, w.Code)

		// Same request again yields the same answer.
		w = doJSON(t, router, http.MethodPost, "/api/v1/filter", model.FilterRequest{
			SessionID: "panel-idempotent",
			Filters:   model.ListingFilters{VibeIDs: []string{"coastal"}},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp model.FilterResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "Coastal Breeze Villa", resp.Results[0].Title)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/filter", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFilterHandler_Vibes(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vibes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Vibes []struct {
			ID       string   `json:"id"`
			Label    string   `json:"label"`
			Keywords []string `json:"keywords"`
		} `json:"vibes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Vibes, 6)
	assert.Equal(t, "bright", resp.Vibes[0].ID)
	assert.Equal(t, "Bright & Airy", resp.Vibes[0].Label)
	assert.Contains(t, resp.Vibes[1].Keywords, "cozy")
}
