package assistant

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
	"time"
)

// SessionCookie is the single key persisted on the visitor's browser. Losing
// it starts a new, unrelated conversation from the backend's point of view.
const SessionCookie = "assistant_session_id"

// NewSessionID generates a session identifier from the current timestamp and
// a random suffix. Unique enough for this single-tenant use.
func NewSessionID() string {
	return fmt.Sprintf("sess_%s_%s",
		strconv.FormatInt(time.Now().UnixMilli(), 36),
		randomSuffix(6))
}

func randomSuffix(n int) string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fall back to the clock; uniqueness still holds with the timestamp
		// component.
		binary.BigEndian.PutUint64(buf[:], uint64(time.Now().UnixNano()))
	}
	s := strconv.FormatUint(binary.BigEndian.Uint64(buf[:]), 36)
	for len(s) < n {
		s = "0" + s
	}
	return s[:n]
}
