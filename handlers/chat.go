package handlers

import (
	"net/http"

	"scholaris/models"
	"scholaris/services/chat"
	"scholaris/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler serves the conversational endpoints.
type ChatHandler struct {
	Service chat.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(service chat.ChatService) *ChatHandler {
	return &ChatHandler{Service: service}
}

// HandleChatMessage processes one user turn. A missing session id starts a
// fresh conversation; the assigned id comes back in the response.
func (h *ChatHandler) HandleChatMessage(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}
	if req.Text == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", "text must not be empty")
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	resp, err := h.Service.HandleMessage(c.Request.Context(), req.SessionID, req.Text)
	if err != nil {
		zap.L().Error("chat turn failed", zap.String("sessionID", req.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process message", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleResetSession discards all conversation state for a session.
func (h *ChatHandler) HandleResetSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if sessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reset request", "session id is required")
		return
	}
	if err := h.Service.ResetSession(c.Request.Context(), sessionID); err != nil {
		zap.L().Error("session reset failed", zap.String("sessionID", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reset session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "reset": true})
}
