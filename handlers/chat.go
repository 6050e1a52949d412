// File: handlers/chat.go
package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"paguro/models"
	"paguro/services/conversation"
	"paguro/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversation engine over HTTP.
type ChatHandler struct {
	Service conversation.Service
	Logger  *zap.Logger
}

func NewChatHandler(svc conversation.Service, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Service: svc, Logger: logger}
}

// HandleChat serves POST /api/chat. Malformed or empty input is
// rejected here, before the engine; everything past this point returns
// a well-formed chat reply.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		utils.JSONError(c, http.StatusBadRequest, "Message is required", "")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = newSessionID()
	}

	h.Logger.Info("chat request received",
		zap.String("sessionId", sessionID), zap.Int("messageLen", len(message)))

	resp := h.Service.HandleMessage(c.Request.Context(), message, sessionID)
	resp.SessionID = sessionID
	resp.Timestamp = time.Now().Format(time.RFC3339)

	c.JSON(http.StatusOK, resp)
}

func newSessionID() string {
	return fmt.Sprintf("session_%d_%s", time.Now().Unix(), uuid.New().String()[:8])
}
