package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/uniadvisor/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"UNIADVISOR_RUNTIME_PATH" envDefault:".uniadvisor"`
	// Allow selecting the provider
	Provider string `env:"LLM_PROVIDER" envDefault:"anthropic"`
	Model    string `env:"MODEL" envDefault:"claude-3-5-sonnet-20241022"`

	ListenAddr string `env:"HTTP_LISTEN_ADDR" envDefault:":8080"`

	// Context Management
	MemoryBackend        string `env:"MEMORY_BACKEND" envDefault:"window"`
	MemoryWindowCap      int    `env:"MEMORY_WINDOW_CAP" envDefault:"20"`
	ContextRetrieveLimit int    `env:"CONTEXT_RETRIEVE_LIMIT" envDefault:"5"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "uniadvisor.db")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}
