package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studio/services/assistant"
	"studio/utils"
)

// AssistantHandler exposes the chat widget endpoints.
type AssistantHandler struct {
	Client *assistant.Client
}

func NewAssistantHandler(client *assistant.Client) *AssistantHandler {
	return &AssistantHandler{Client: client}
}

// ChatInput is the expected body of one chat send.
type ChatInput struct {
	Message string `json:"message" binding:"required"`
}

// SendMessageHandler forwards one visitor message to the backend and returns
// the assistant reply.
func (h *AssistantHandler) SendMessageHandler(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Message invalide", err.Error())
		return
	}

	sessionID := EnsureSession(c)
	msg, err := h.Client.Send(c.Request.Context(), sessionID, input.Message)
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage):
		utils.JSONError(c, http.StatusBadRequest, "Message invalide", "message vide")
		return
	case errors.Is(err, assistant.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"error": "Envoi en cours..."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": msg.Text})
}

// HistoryHandler returns the session transcript so the widget can seed its
// message list.
func (h *AssistantHandler) HistoryHandler(c *gin.Context) {
	sessionID := EnsureSession(c)
	c.JSON(http.StatusOK, gin.H{"messages": h.Client.History(sessionID)})
}
