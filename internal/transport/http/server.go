package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sandevgo/uniadvisor/internal/config"
	"github.com/sandevgo/uniadvisor/internal/core"
	"github.com/sandevgo/uniadvisor/internal/observability"
	"github.com/sandevgo/uniadvisor/internal/service/advisor"
	"github.com/sandevgo/uniadvisor/internal/storage/sqlite"
	"github.com/sandevgo/uniadvisor/pkg/log"
)

// Catalog is the gateway plus the by-id read the catalog API needs.
type Catalog interface {
	core.CatalogGateway
	GetByID(ctx context.Context, id int64) (*sqlite.University, error)
}

// Server exposes the advisor and catalog over HTTP. It implements the
// srv.Service lifecycle.
type Server struct {
	cfg     *config.AppConfig
	advisor *advisor.Advisor
	catalog Catalog
	metrics *observability.Metrics
	httpSrv *http.Server
}

func NewServer(cfg *config.AppConfig, adv *advisor.Advisor, catalog Catalog, metrics *observability.Metrics) *Server {
	s := &Server{
		cfg:     cfg,
		advisor: adv,
		catalog: catalog,
		metrics: metrics,
	}
	s.httpSrv = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Route("/ai", func(r chi.Router) {
		r.Post("/recommend", s.handleRecommend)
		r.Post("/compare", s.handleCompare)
		r.Get("/health", s.handleHealth)
		r.Delete("/context/{sessionID}", s.handleClearContext)
	})

	r.Get("/universities", s.handleListUniversities)
	r.Get("/universities/{universityID}", s.handleGetUniversity)
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		observability.MetricsHandler().ServeHTTP(w, r)
	})

	return r
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.cfg.ListenAddr).Msg("starting http server")
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(shutdownCtx)
}
