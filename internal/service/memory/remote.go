package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sandevgo/uniadvisor/internal/config"
	"github.com/sandevgo/uniadvisor/internal/core"
	"github.com/sandevgo/uniadvisor/pkg/log"
)

// RemoteStore talks to an external memory service over HTTP. Every
// failure mode — timeout, transport error, non-2xx — degrades into the
// contract's no-op outcomes; surviving an unavailable backend is the
// whole point of this variant. No retries: one timeout yields the no-op
// immediately so agent latency stays bounded by the model call.
type RemoteStore struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewRemoteStore(cfg *config.MemoryServiceConfig) *RemoteStore {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RemoteStore{
		client:  &http.Client{Timeout: timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

func (s *RemoteStore) Kind() string { return "remote" }

// Enabled reports whether the service is configured at all. An unset API
// key leaves the store permanently in its degraded mode.
func (s *RemoteStore) Enabled() bool { return s.apiKey != "" }

type entryData struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type contextRecord struct {
	SessionID string    `json:"session_id"`
	Data      entryData `json:"data"`
	Tags      []string  `json:"tags"`
	Timestamp string    `json:"timestamp"`
}

func (s *RemoteStore) Store(ctx context.Context, sessionKey string, entries ...core.ContextEntry) core.Ack {
	if !s.Enabled() {
		return core.Ack{Stored: false, Reason: "memory service not configured"}
	}

	for _, e := range entries {
		ts := e.Timestamp
		if ts.IsZero() {
			ts = time.Now().UTC()
		}
		record := contextRecord{
			SessionID: sessionKey,
			Data:      entryData{Role: e.Role, Content: e.Content},
			Tags:      e.Tags,
			Timestamp: ts.Format(time.RFC3339),
		}
		if err := s.post(ctx, "/v1/context", record, nil); err != nil {
			log.FromCtx(ctx).Warn().Err(err).Str("session", sessionKey).Msg("memory service store failed")
			return core.Ack{Stored: false, Reason: err.Error()}
		}
	}
	return core.Ack{Stored: true}
}

func (s *RemoteStore) Retrieve(ctx context.Context, sessionKey string, limit int) []core.ContextEntry {
	if !s.Enabled() {
		return nil
	}

	path := "/v1/context/" + url.PathEscape(sessionKey) + "?limit=" + strconv.Itoa(limit)
	var result struct {
		Contexts []contextRecord `json:"contexts"`
	}
	if err := s.get(ctx, path, &result); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("session", sessionKey).Msg("memory service retrieve failed")
		return nil
	}
	return toEntries(result.Contexts)
}

// Search does a semantic lookup over stored contexts. This is a
// backend-specific extension of the remote service, deliberately outside
// the ContextStore contract.
func (s *RemoteStore) Search(ctx context.Context, sessionKey, query string, limit int) []core.ContextEntry {
	if !s.Enabled() {
		return nil
	}

	payload := map[string]any{
		"session_id": sessionKey,
		"query":      query,
		"limit":      limit,
	}
	var result struct {
		Results []contextRecord `json:"results"`
	}
	if err := s.post(ctx, "/v1/context/search", payload, &result); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("session", sessionKey).Msg("memory service search failed")
		return nil
	}
	return toEntries(result.Results)
}

func (s *RemoteStore) Clear(ctx context.Context, sessionKey string) bool {
	if !s.Enabled() {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.baseURL+"/v1/context/"+url.PathEscape(sessionKey), nil)
	if err != nil {
		return false
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("session", sessionKey).Msg("memory service clear failed")
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (s *RemoteStore) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return s.do(req, out)
}

func (s *RemoteStore) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return s.do(req, out)
}

func (s *RemoteStore) do(req *http.Request, out any) error {
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
	}
	return nil
}

func (s *RemoteStore) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", core.AppUserAgent)
}

func toEntries(records []contextRecord) []core.ContextEntry {
	if len(records) == 0 {
		return nil
	}
	entries := make([]core.ContextEntry, 0, len(records))
	for _, r := range records {
		ts, _ := time.Parse(time.RFC3339, r.Timestamp)
		entries = append(entries, core.ContextEntry{
			Role:      r.Data.Role,
			Content:   r.Data.Content,
			Tags:      r.Tags,
			Timestamp: ts,
		})
	}
	return entries
}
