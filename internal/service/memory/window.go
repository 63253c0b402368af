package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/uniadvisor/internal/core"
)

// DefaultWindowCap is the hard per-session entry cap. The cap is the
// store's only durability guarantee: long-term memory is traded for
// bounded resource use.
const DefaultWindowCap = 20

// WindowStore keeps a bounded in-process entry sequence per session.
// No external dependency; survives only as long as the process.
type WindowStore struct {
	cap int

	mu       sync.RWMutex
	sessions map[string]*sessionWindow
}

// sessionWindow owns its entries behind its own mutex so append-and-trim
// stays atomic per session without unrelated sessions contending.
type sessionWindow struct {
	mu      sync.Mutex
	entries []core.ContextEntry
}

func NewWindowStore(capacity int) *WindowStore {
	if capacity <= 0 {
		capacity = DefaultWindowCap
	}
	return &WindowStore{
		cap:      capacity,
		sessions: make(map[string]*sessionWindow),
	}
}

func (s *WindowStore) Kind() string { return "window" }

func (s *WindowStore) window(sessionKey string) *sessionWindow {
	s.mu.RLock()
	w, ok := s.sessions[sessionKey]
	s.mu.RUnlock()
	if ok {
		return w
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok = s.sessions[sessionKey]; ok {
		return w
	}
	w = &sessionWindow{}
	s.sessions[sessionKey] = w
	return w
}

func (s *WindowStore) Store(_ context.Context, sessionKey string, entries ...core.ContextEntry) core.Ack {
	if len(entries) == 0 {
		return core.Ack{Stored: true}
	}

	w := s.window(sessionKey)
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if e.Timestamp.IsZero() {
			e.Timestamp = time.Now().UTC()
		}
		w.entries = append(w.entries, e)
	}
	// Drop oldest entries until the cap holds again.
	if over := len(w.entries) - s.cap; over > 0 {
		w.entries = append(w.entries[:0:0], w.entries[over:]...)
	}

	return core.Ack{Stored: true}
}

func (s *WindowStore) Retrieve(_ context.Context, sessionKey string, limit int) []core.ContextEntry {
	s.mu.RLock()
	w, ok := s.sessions[sessionKey]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.entries) == 0 {
		return nil
	}
	if limit <= 0 || limit > len(w.entries) {
		limit = len(w.entries)
	}
	out := make([]core.ContextEntry, limit)
	copy(out, w.entries[len(w.entries)-limit:])
	return out
}

// Clear reports whether any context existed for the session.
func (s *WindowStore) Clear(_ context.Context, sessionKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[sessionKey]
	delete(s.sessions, sessionKey)
	return ok
}
