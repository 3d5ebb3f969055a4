package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"spaceai/internal/model"
	"spaceai/internal/service"
)

// FilterHandler handles declarative filter panel requests
type FilterHandler struct {
	filters  *service.FilterService
	sessions *service.SessionStore
	vibes    *service.VibeTaxonomy
}

// NewFilterHandler creates a new filter handler
func NewFilterHandler(filters *service.FilterService, sessions *service.SessionStore, vibes *service.VibeTaxonomy) *FilterHandler {
	return &FilterHandler{filters: filters, sessions: sessions, vibes: vibes}
}

// Apply handles POST /api/v1/filter. It narrows a session's active
// result set without touching conversation state, so applying the same
// filters again returns the same listings.
func (h *FilterHandler) Apply(c *gin.Context) {
	var req model.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	sess := h.sessions.Get(req.SessionID)
	sess.Lock()
	defer sess.Unlock()

	results := h.filters.Apply(sess.Active, req.Filters)

	c.JSON(http.StatusOK, model.FilterResponse{
		SessionID: req.SessionID,
		Results:   results,
		Total:     len(results),
	})
}

// Vibes handles GET /api/v1/vibes
func (h *FilterHandler) Vibes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"vibes": h.vibes.Options()})
}
