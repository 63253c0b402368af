package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/uniadvisor/internal/config"
	"github.com/sandevgo/uniadvisor/internal/core"
	"github.com/sandevgo/uniadvisor/internal/observability"
	"github.com/sandevgo/uniadvisor/internal/service/memory"
	"github.com/sandevgo/uniadvisor/pkg/log"
)

const (
	catalogFetchLimit  = 50
	recommendMaxTokens = 2000
	compareMaxTokens   = 1500
	// responsePreviewLen bounds the assistant excerpt written back to the
	// context store after a successful recommendation.
	responsePreviewLen = 200

	scoreMax = 1600
)

// Advisor wires the context store, catalog and model provider into the
// recommendation and comparison flows. One explicitly constructed
// instance with process-wide lifetime; the host application injects it.
type Advisor struct {
	cfg      *config.AppConfig
	store    core.ContextStore
	catalog  core.CatalogGateway
	provider core.ModelProvider
	metrics  *observability.Metrics
}

func New(cfg *config.AppConfig, store core.ContextStore, catalog core.CatalogGateway, provider core.ModelProvider, metrics *observability.Metrics) *Advisor {
	return &Advisor{
		cfg:      cfg,
		store:    store,
		catalog:  catalog,
		provider: provider,
		metrics:  metrics,
	}
}

// Recommend runs one recommendation turn: load context, fetch and select
// candidates, call the model once, write the turn back best-effort.
// Model and gateway failures come back as structured results; the only
// error return is validation, rejected before any external call.
func (a *Advisor) Recommend(ctx context.Context, req RecommendRequest) (RecommendResult, error) {
	logger := log.FromCtx(ctx)

	if req.Score != nil && (*req.Score < 0 || *req.Score > scoreMax) {
		return RecommendResult{}, core.NewValidationError("user_score must be between 0 and %d", scoreMax)
	}

	entries := a.store.Retrieve(ctx, req.SessionKey, a.cfg.ContextRetrieveLimit)
	digest := memory.Digest(entries)
	contextUsed := len(entries) > 0

	filters := core.FilterCriteria{Score: req.Score, Country: req.Country, Specialty: req.Specialty}
	records, total, err := a.catalog.Candidates(ctx, core.CatalogQuery{
		Filters: filters,
		Limit:   catalogFetchLimit,
		SortBy:  "name",
	})
	if err != nil {
		logger.Error().Err(err).Msg("catalog fetch failed")
		return RecommendResult{
			Success:     false,
			Error:       fmt.Sprintf("catalog unavailable: %v", err),
			ContextUsed: contextUsed,
		}, nil
	}

	candidates := selectCandidates(records, req.Score)

	system, user := buildRecommendationPrompt(digest, filters, req.Query, candidates)
	a.observePrompt(ctx, system, user)

	text, err := a.provider.Complete(ctx, system, user, recommendMaxTokens)
	if err != nil {
		a.metrics.ObserveModelCall(a.provider.Name(), "failure")
		logger.Error().Err(err).Str("session", req.SessionKey).Msg("recommendation model call failed")
		return RecommendResult{
			Success:              false,
			Error:                err.Error(),
			UniversitiesAnalyzed: len(candidates),
			ContextUsed:          contextUsed,
		}, nil
	}
	a.metrics.ObserveModelCall(a.provider.Name(), "success")

	a.writeback(ctx, req.SessionKey,
		[]string{core.TagRecommendation, core.TagQuery},
		core.ContextEntry{Role: core.RoleUser, Content: req.Query},
		core.ContextEntry{Role: core.RoleAssistant, Content: preview(text)},
	)

	return RecommendResult{
		Success:              true,
		Recommendations:      text,
		UniversitiesAnalyzed: len(candidates),
		TotalAvailable:       total,
		ContextUsed:          contextUsed,
		SessionKey:           req.SessionKey,
	}, nil
}

// Compare resolves each requested name independently, fails fast when
// nothing matched, and issues one comparison call. Names matching zero
// records are silently dropped.
func (a *Advisor) Compare(ctx context.Context, req CompareRequest) (CompareResult, error) {
	logger := log.FromCtx(ctx)

	if len(req.Names) == 0 {
		return CompareResult{}, core.NewValidationError("university_names must not be empty")
	}

	var candidates []core.CandidateRecord
	for _, name := range req.Names {
		matches, err := a.catalog.Search(ctx, name)
		if err != nil {
			logger.Error().Err(err).Str("name", name).Msg("catalog search failed")
			return CompareResult{
				Success: false,
				Error:   fmt.Sprintf("catalog unavailable: %v", err),
			}, nil
		}
		candidates = append(candidates, matches...)
	}

	if len(candidates) == 0 {
		return CompareResult{Success: false, Error: core.ErrNoMatches.Error()}, nil
	}

	system, user := buildComparisonPrompt(req.Criteria, candidates)
	a.observePrompt(ctx, system, user)

	text, err := a.provider.Complete(ctx, system, user, compareMaxTokens)
	if err != nil {
		a.metrics.ObserveModelCall(a.provider.Name(), "failure")
		logger.Error().Err(err).Str("session", req.SessionKey).Msg("comparison model call failed")
		return CompareResult{Success: false, Error: err.Error()}, nil
	}
	a.metrics.ObserveModelCall(a.provider.Name(), "success")

	note := fmt.Sprintf("Compared universities: %s", strings.Join(req.Names, ", "))
	a.writeback(ctx, req.SessionKey,
		[]string{core.TagComparison},
		core.ContextEntry{Role: core.RoleSystemNote, Content: note},
	)

	return CompareResult{
		Success:              true,
		Comparison:           text,
		UniversitiesCompared: len(candidates),
	}, nil
}

// ClearContext drops all stored memory for a session.
func (a *Advisor) ClearContext(ctx context.Context, sessionKey string) bool {
	return a.store.Clear(ctx, sessionKey)
}

// Health reports operational state. Degraded states still answer.
func (a *Advisor) Health() HealthInfo {
	status := "operational"
	if !a.provider.Configured() {
		status = "degraded"
	}

	// The window backend is always live; the remote one reports itself.
	memoryEnabled := true
	if e, ok := a.store.(interface{ Enabled() bool }); ok {
		memoryEnabled = e.Enabled()
	}

	return HealthInfo{
		Status:             status,
		ProviderConfigured: a.provider.Configured(),
		Provider:           a.provider.Name(),
		Model:              a.provider.Model(),
		MemoryBackend:      a.store.Kind(),
		MemoryEnabled:      memoryEnabled,
		Capabilities: []string{
			"university_recommendations",
			"university_comparison",
			"conversation_tracking",
			"personalized_advice",
		},
	}
}

// writeback is best-effort: a memory outage degrades future context,
// never the turn that just succeeded.
func (a *Advisor) writeback(ctx context.Context, sessionKey string, tags []string, entries ...core.ContextEntry) {
	for i := range entries {
		entries[i].Tags = tags
	}
	ack := a.store.Store(ctx, sessionKey, entries...)
	a.metrics.ObserveMemoryWrite(a.store.Kind(), ack.Stored)
	if !ack.Stored {
		log.FromCtx(ctx).Warn().Str("session", sessionKey).Str("reason", ack.Reason).Msg("context writeback skipped")
	}
}

func (a *Advisor) observePrompt(ctx context.Context, system, user string) {
	n := promptTokens(system, user)
	a.metrics.ObservePromptTokens(n)
	log.FromCtx(ctx).Debug().Int("tokens", n).Msg("prompt built")
}

func preview(text string) string {
	if r := []rune(text); len(r) > responsePreviewLen {
		return string(r[:responsePreviewLen])
	}
	return text
}
