package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/uniadvisor/internal/config"
	"github.com/sandevgo/uniadvisor/internal/observability"
	"github.com/sandevgo/uniadvisor/internal/providers/llm"
	"github.com/sandevgo/uniadvisor/internal/service/advisor"
	"github.com/sandevgo/uniadvisor/internal/service/memory"
	"github.com/sandevgo/uniadvisor/internal/storage/sqlite"
	transport "github.com/sandevgo/uniadvisor/internal/transport/http"
	"github.com/sandevgo/uniadvisor/pkg/log"
	"github.com/sandevgo/uniadvisor/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Catalog storage
	db, catalog, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	// 3. Model provider
	provider, err := llm.NewProvider(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 4. Context store
	store, err := memory.NewStore(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize context store")
	}

	// 5. Metrics
	metrics := observability.NewMetrics("uniadvisor")

	// 6. Advisor
	adv := advisor.New(appCfg, store, catalog, provider, metrics)

	// 7. Transport
	services = append(services, transport.NewServer(appCfg, adv, catalog, metrics))

	return services
}

func initEnv(ctx context.Context) error {
	envPath := filepath.Join(config.GetRuntimePath(), ".env")
	if _, err := os.Stat(envPath); err != nil {
		// running purely off process env is fine
		return nil
	}
	if err := godotenv.Load(envPath); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("path", envPath).Msg("failed to load .env file")
	}
	return nil
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, *sqlite.UniversitiesRepo, error) {
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return db, sqlite.NewUniversitiesRepo(db), nil
}
