package core

import (
	"errors"
	"fmt"
)

// Provider error kinds. Transport covers network failures and timeouts
// on the wire; Provider covers errors the backend itself reported.
const (
	ErrKindTransport = "transport"
	ErrKindProvider  = "provider"
)

// ProviderError is a classified failure from a single model call.
// The message carries the provider's raw diagnostic text.
type ProviderError struct {
	Kind    string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// ErrNoMatches reports a comparison request that resolved zero catalog
// records. Surfaced as a structured failure, never a panic or 5xx-only.
var ErrNoMatches = errors.New("no universities found with the given names")

// ValidationError rejects bad input before any external call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
