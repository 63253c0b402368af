package core

import "context"

// ModelProvider issues exactly one completion call per invocation.
// There is no internal retry: any failure surfaces immediately as a
// *ProviderError so the orchestrator can fail the current turn.
type ModelProvider interface {
	Complete(ctx context.Context, system, user string, maxTokens int) (string, error)
	Name() string
	Model() string
	Configured() bool
}
