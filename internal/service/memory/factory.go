package memory

import (
	"context"
	"fmt"

	"github.com/sandevgo/uniadvisor/internal/config"
	"github.com/sandevgo/uniadvisor/internal/core"
	"github.com/sandevgo/uniadvisor/pkg/log"
)

// NewStore creates the configured ContextStore variant. The choice is
// made once, here; callers only ever see the contract.
func NewStore(ctx context.Context, cfg *config.AppConfig) (core.ContextStore, error) {
	switch cfg.MemoryBackend {
	case "window", "":
		log.FromCtx(ctx).Info().Int("cap", cfg.MemoryWindowCap).Msg("using in-process window memory")
		return NewWindowStore(cfg.MemoryWindowCap), nil
	case "remote":
		svcCfg := config.NewMemoryServiceConfig(ctx)
		store := NewRemoteStore(svcCfg)
		if !store.Enabled() {
			log.FromCtx(ctx).Warn().Msg("memory service API key unset, remote memory will be a no-op")
		}
		log.FromCtx(ctx).Info().Str("url", svcCfg.BaseURL).Msg("using remote memory service")
		return store, nil
	default:
		return nil, fmt.Errorf("unknown memory backend: %s", cfg.MemoryBackend)
	}
}
