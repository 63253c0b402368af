package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sandevgo/uniadvisor/internal/core"
	"github.com/sandevgo/uniadvisor/internal/service/advisor"
	"github.com/sandevgo/uniadvisor/pkg/log"
)

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req advisor.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.SessionKey == "" || req.Query == "" {
		respondError(w, http.StatusBadRequest, "session_id and query are required")
		return
	}

	result, err := s.advisor.Recommend(r.Context(), req)
	if err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusBadRequest, verr.Msg)
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !result.Success {
		respondJSON(w, http.StatusInternalServerError, result)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req advisor.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.SessionKey == "" {
		respondError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	result, err := s.advisor.Compare(r.Context(), req)
	if err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusBadRequest, verr.Msg)
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !result.Success {
		respondJSON(w, http.StatusInternalServerError, result)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// handleHealth always answers 200; degradation shows in the payload.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.advisor.Health())
}

func (s *Server) handleClearContext(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	cleared := s.advisor.ClearContext(r.Context(), sessionID)
	respondJSON(w, http.StatusOK, map[string]bool{"cleared": cleared})
}

func (s *Server) handleListUniversities(w http.ResponseWriter, r *http.Request) {
	q := core.CatalogQuery{
		Filters: core.FilterCriteria{
			Country:   r.URL.Query().Get("country"),
			Specialty: r.URL.Query().Get("specialty"),
		},
		SortBy: r.URL.Query().Get("sort_by"),
		Desc:   r.URL.Query().Get("sort_order") == "desc",
	}

	if v := r.URL.Query().Get("min_score"); v != "" {
		score, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "min_score must be a number")
			return
		}
		q.Filters.Score = &score
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		q.Limit = limit
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "offset must be an integer")
			return
		}
		q.Offset = offset
	}

	records, total, err := s.catalog.Candidates(r.Context(), q)
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("university list failed")
		respondError(w, http.StatusInternalServerError, "catalog unavailable")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"universities": records,
		"total":        total,
	})
}

func (s *Server) handleGetUniversity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "universityID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "university id must be an integer")
		return
	}

	u, err := s.catalog.GetByID(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, "university not found")
		return
	}
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Int64("id", id).Msg("university lookup failed")
		respondError(w, http.StatusInternalServerError, "catalog unavailable")
		return
	}
	respondJSON(w, http.StatusOK, u)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}
