package assistant

import (
	"sync"
	"time"

	"studio/models"
)

// Greeting seeds every new transcript.
const Greeting = "Bonjour. Je suis votre assistant. Je reponds uniquement aux questions sur nos services. Comment puis-je vous aider ?"

// Store holds per-session transcripts. Ordering is strictly append order; no
// reordering or deduplication.
type Store interface {
	History(sessionID string) []models.ChatMessage
	Append(sessionID string, msg models.ChatMessage)
	Clear(sessionID string)
}

type transcript struct {
	messages []models.ChatMessage
	lastSeen time.Time
}

// MemoryStore keeps transcripts in process memory with a TTL. Transcripts are
// deliberately not persisted anywhere: the session identifier is the only
// state that outlives a visit.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*transcript
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]*transcript),
	}
}

func (s *MemoryStore) History(sessionID string) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	tr := s.get(sessionID)
	out := make([]models.ChatMessage, len(tr.messages))
	copy(out, tr.messages)
	return out
}

func (s *MemoryStore) Append(sessionID string, msg models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tr := s.get(sessionID)
	tr.messages = append(tr.messages, msg)
}

func (s *MemoryStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// get returns the live transcript for the session, seeding a fresh one with
// the greeting when absent or expired. Callers hold s.mu.
func (s *MemoryStore) get(sessionID string) *transcript {
	s.sweep()
	tr, ok := s.sessions[sessionID]
	if !ok {
		tr = &transcript{messages: []models.ChatMessage{{Role: models.RoleBot, Text: Greeting}}}
		s.sessions[sessionID] = tr
	}
	tr.lastSeen = time.Now()
	return tr
}

func (s *MemoryStore) sweep() {
	if s.ttl <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.ttl)
	for id, tr := range s.sessions {
		if tr.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
