package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"studio/models"
	"studio/services/catalog"
	"studio/utils"
)

// QuickQuestions are the one-tap prompts offered by the widget.
var QuickQuestions = []string{
	"Quels sont vos tarifs ?",
	"Comment ca marche ?",
	"Quel service pour mon besoin ?",
	"Donnez-moi le WhatsApp",
}

var (
	// ErrEmptyMessage rejects blank or whitespace-only input before any
	// transcript entry or network call happens.
	ErrEmptyMessage = errors.New("assistant: empty message")
	// ErrBusy rejects a send while another one for the same session is in
	// flight.
	ErrBusy = errors.New("assistant: send already in flight")
)

const (
	fallbackReply = "Merci pour votre message. Je peux vous aider uniquement sur nos services. WhatsApp: " + catalog.WhatsAppNumber
	fallbackError = "Desole, une erreur temporaire est survenue. Veuillez reessayer. WhatsApp: " + catalog.WhatsAppNumber
)

// Client exchanges single request/response turns with the backend chat
// endpoint and maintains the per-session transcript.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Store      Store
	Logger     *zap.Logger

	inflight *utils.InFlight
}

func NewClient(baseURL string, store Store, logger *zap.Logger) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Store:      store,
		Logger:     logger,
		inflight:   utils.NewInFlight(),
	}
}

// History returns the session transcript, seeded with the greeting.
func (c *Client) History(sessionID string) []models.ChatMessage {
	return c.Store.History(sessionID)
}

// Send appends the user message, forwards it to the backend and appends the
// reply (or a fixed apology when the call fails). The bot message is
// returned. At most one send per session runs at a time.
func (c *Client) Send(ctx context.Context, sessionID, text string) (models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}
	if !c.inflight.Begin(sessionID) {
		return models.ChatMessage{}, ErrBusy
	}
	defer c.inflight.End(sessionID)

	c.Store.Append(sessionID, models.ChatMessage{Role: models.RoleUser, Text: text})

	reply := c.exchange(ctx, sessionID, text)
	msg := models.ChatMessage{Role: models.RoleBot, Text: reply}
	c.Store.Append(sessionID, msg)
	return msg, nil
}

func (c *Client) exchange(ctx context.Context, sessionID, text string) string {
	body, err := json.Marshal(models.ChatRequest{SessionID: sessionID, Message: text})
	if err != nil {
		c.Logger.Error("Failed to marshal chat request", zap.Error(err))
		return fallbackError
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		c.Logger.Error("Failed to build chat request", zap.Error(err))
		return fallbackError
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Error("Failed to call chat endpoint", zap.Error(err))
		return fallbackError
	}
	defer resp.Body.Close()

	// An absent or unreadable reply field falls back to the fixed message;
	// the response status is deliberately not inspected beyond that.
	var result models.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result.Reply == "" {
		return fallbackReply
	}
	return result.Reply
}
