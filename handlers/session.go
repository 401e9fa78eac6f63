package handlers

import (
	"github.com/gin-gonic/gin"

	"studio/services/assistant"
)

const sessionCookieMaxAge = 365 * 24 * 60 * 60

// EnsureSession reads the visitor's session identifier cookie, generating and
// setting one when absent. The identifier, once issued, stays stable for the
// browser profile; it is the only client-side persisted state.
func EnsureSession(c *gin.Context) string {
	if id, err := c.Cookie(assistant.SessionCookie); err == nil && id != "" {
		return id
	}
	id := assistant.NewSessionID()
	c.SetCookie(assistant.SessionCookie, id, sessionCookieMaxAge, "/", "", false, true)
	return id
}
