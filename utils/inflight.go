package utils

import "sync"

// InFlight tracks at most one outstanding operation per key. Each
// user-initiated action (form submission, chat send) owns its own instance,
// so they never block each other.
type InFlight struct {
	mu   sync.Mutex
	busy map[string]bool
}

func NewInFlight() *InFlight {
	return &InFlight{busy: make(map[string]bool)}
}

// Begin claims the key. It returns false if an operation for the key is
// already in flight; the caller must then drop the trigger (never queue it).
func (f *InFlight) Begin(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy[key] {
		return false
	}
	f.busy[key] = true
	return true
}

// End releases the key. Safe to call on every exit path.
func (f *InFlight) End(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.busy, key)
}
