package models

// Chat transcript roles.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// ChatMessage is one transcript entry of an assistant session.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatRequest is the body sent to the backend chat endpoint.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// ChatResponse is the backend reply. Reply may be empty when the backend
// omits the field; the client substitutes a fallback.
type ChatResponse struct {
	Reply string `json:"reply"`
}
