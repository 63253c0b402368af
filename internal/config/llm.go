package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/uniadvisor/pkg/log"
)

// Provider keys are optional on purpose: a missing key leaves the agent
// in degraded mode, visible through the health endpoint, instead of
// refusing to start.
type AnthropicConfig struct {
	APIKey string `env:"ANTHROPIC_API_KEY"`
}

func NewAnthropicConfig(ctx context.Context) *AnthropicConfig {
	c := &AnthropicConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Anthropic config")
	}
	return c
}

type OpenAIConfig struct {
	APIKey string `env:"OPENAI_API_KEY"`
}

func NewOpenAIConfig(ctx context.Context) *OpenAIConfig {
	c := &OpenAIConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse OpenAI config")
	}
	return c
}

type CustomOpenAIConfig struct {
	BaseURL string `env:"CUSTOM_OPENAI_BASE_URL,required,notEmpty"`
	APIKey  string `env:"CUSTOM_OPENAI_API_KEY"`
}

func NewCustomOpenAIConfig(ctx context.Context) *CustomOpenAIConfig {
	c := &CustomOpenAIConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse custom OpenAI config")
	}
	return c
}
