package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"spaceai/internal/model"
	"spaceai/internal/service"
)

// greeting is the single fresh message a reset conversation starts with.
const greeting = "Let's start fresh! What kind of space are you looking for?"

// ChatHandler handles conversational search requests
type ChatHandler struct {
	chat     *service.ChatService
	sessions *service.SessionStore
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *service.ChatService, sessions *service.SessionStore) *ChatHandler {
	return &ChatHandler{chat: chat, sessions: sessions}
}

// Send handles POST /api/v1/chat
func (h *ChatHandler) Send(c *gin.Context) {
	var req model.ChatRequest
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

	result, convo := h.chat.Interpret(c.Request.Context(), req.Message, sess.Conversation)
	sess.Conversation = convo
	sess.Active = result.Results

	c.JSON(http.StatusOK, model.ChatResponse{
		SessionID: req.SessionID,
		Reply:     result.Reply,
		Notice:    result.Notice,
		Results:   result.Results,
		Total:     len(result.Results),
		LiveData:  result.LiveData,
		Location:  result.Location,
		Took:      result.Took,
	})
}

// Reset handles POST /api/v1/chat/reset
func (h *ChatHandler) Reset(c *gin.Context) {
	var req model.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	sess := h.sessions.Reset(req.SessionID)

	c.JSON(http.StatusOK, model.ChatResponse{
		SessionID: req.SessionID,
		Reply:     greeting,
		Results:   sess.Active,
		Total:     len(sess.Active),
	})
}
