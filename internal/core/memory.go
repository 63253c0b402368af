package core

import "context"

// Ack reports whether a memory write is known to have been persisted.
// A false Stored never aborts the caller's flow.
type Ack struct {
	Stored bool
	Reason string
}

// ContextStore persists and retrieves conversational memory per session.
// Both backends honor the same degradation contract: a backend outage
// yields a not-stored Ack or an empty slice, never an error that fails
// the enclosing request. Callers must not branch on the concrete variant.
type ContextStore interface {
	// Store appends entries to the session's sequence, in order.
	Store(ctx context.Context, sessionKey string, entries ...ContextEntry) Ack
	// Retrieve returns the most recent limit entries, oldest first.
	// Unknown sessions and unreachable backends yield an empty slice.
	Retrieve(ctx context.Context, sessionKey string, limit int) []ContextEntry
	// Clear removes all entries for a session and reports whether the
	// removal is known to have succeeded.
	Clear(ctx context.Context, sessionKey string) bool
	// Kind names the backend for health reporting and logs.
	Kind() string
}
