package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/uniadvisor/internal/config"
	"github.com/sandevgo/uniadvisor/internal/core"
	"github.com/sandevgo/uniadvisor/pkg/log"
)

// NewProvider creates the appropriate ModelProvider based on configuration.
func NewProvider(ctx context.Context, cfg *config.AppConfig) (core.ModelProvider, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.Provider).
		Str("model", cfg.Model).
		Msg("starting llm provider")

	switch cfg.Provider {
	case "anthropic":
		return NewAnthropic(config.NewAnthropicConfig(ctx).APIKey, cfg.Model), nil
	case "openai":
		return NewOpenAI(config.NewOpenAIConfig(ctx).APIKey, cfg.Model), nil
	case "custom":
		custom := config.NewCustomOpenAIConfig(ctx)
		return NewCustomOpenAI(custom.BaseURL, custom.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
