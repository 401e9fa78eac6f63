package assistant

import (
	"testing"
	"time"

	"studio/models"
)

func TestMemoryStoreSeedsGreeting(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	history := store.History("sess_1")
	if len(history) != 1 {
		t.Fatalf("new transcript should hold the greeting, got %d messages", len(history))
	}
	if history[0].Role != models.RoleBot || history[0].Text != Greeting {
		t.Errorf("unexpected greeting entry: %+v", history[0])
	}
}

func TestMemoryStoreAppendKeepsOrder(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	store.Append("sess_1", models.ChatMessage{Role: models.RoleUser, Text: "a"})
	store.Append("sess_1", models.ChatMessage{Role: models.RoleBot, Text: "b"})
	store.Append("sess_1", models.ChatMessage{Role: models.RoleUser, Text: "a"})

	history := store.History("sess_1")
	// Greeting + three appended entries, duplicates included.
	if len(history) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(history))
	}
	if history[1].Text != "a" || history[2].Text != "b" || history[3].Text != "a" {
		t.Errorf("order not preserved: %+v", history)
	}
}

func TestMemoryStoreSessionsAreIsolated(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	store.Append("sess_1", models.ChatMessage{Role: models.RoleUser, Text: "bonjour"})
	if got := len(store.History("sess_2")); got != 1 {
		t.Errorf("sessions must not share transcripts, got %d messages", got)
	}
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	store.Append("sess_1", models.ChatMessage{Role: models.RoleUser, Text: "bonjour"})
	store.Clear("sess_1")

	if got := len(store.History("sess_1")); got != 1 {
		t.Errorf("cleared transcript should restart from the greeting, got %d messages", got)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)

	store.Append("sess_1", models.ChatMessage{Role: models.RoleUser, Text: "bonjour"})
	time.Sleep(30 * time.Millisecond)

	if got := len(store.History("sess_1")); got != 1 {
		t.Errorf("expired transcript should restart from the greeting, got %d messages", got)
	}
}
