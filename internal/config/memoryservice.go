package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/uniadvisor/pkg/log"
)

type MemoryServiceConfig struct {
	BaseURL string `env:"MEMORY_SERVICE_URL" envDefault:"https://api.context7.io"`
	APIKey  string `env:"MEMORY_SERVICE_API_KEY"`
	// TimeoutSeconds bounds every memory-service round trip. Agent latency
	// must stay bounded by the model call, not by a flaky memory side-call.
	TimeoutSeconds int `env:"MEMORY_SERVICE_TIMEOUT_SECONDS" envDefault:"10"`
}

func NewMemoryServiceConfig(ctx context.Context) *MemoryServiceConfig {
	c := &MemoryServiceConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse memory service config")
	}
	return c
}
