package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/uniadvisor/internal/core"
)

func anthropicAt(url string) *Anthropic {
	return &Anthropic{baseProvider: newBaseProvider(url, "test-key", "claude-test")}
}

func TestAnthropic_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "claude-test", payload["model"])
		assert.Equal(t, float64(2000), payload["max_tokens"])
		assert.Equal(t, "system prompt", payload["system"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"Hello "},{"type":"text","text":"world"}]}`))
	}))
	defer srv.Close()

	text, err := anthropicAt(srv.URL).Complete(context.Background(), "system prompt", "user prompt", 2000)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", text)
}

func TestAnthropic_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error"}}`))
	}))
	defer srv.Close()

	_, err := anthropicAt(srv.URL).Complete(context.Background(), "s", "u", 100)
	var perr *core.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, core.ErrKindProvider, perr.Kind)
	assert.Contains(t, perr.Message, "http 429")
	assert.Contains(t, perr.Message, "rate_limit_error")
}

func TestAnthropic_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listening anymore

	_, err := anthropicAt(srv.URL).Complete(context.Background(), "s", "u", 100)
	var perr *core.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, core.ErrKindTransport, perr.Kind)
}

func TestAnthropic_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer srv.Close()

	_, err := anthropicAt(srv.URL).Complete(context.Background(), "s", "u", 100)
	var perr *core.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, core.ErrKindProvider, perr.Kind)
}

func TestAnthropic_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := anthropicAt(srv.URL).Complete(ctx, "s", "u", 100)
	var perr *core.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, core.ErrKindTransport, perr.Kind)
}

func TestAnthropic_Configured(t *testing.T) {
	assert.True(t, NewAnthropic("key", "m").Configured())
	assert.False(t, NewAnthropic("", "m").Configured())
}

func TestOpenAICompatible_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Messages, 2)
		assert.Equal(t, "system", payload.Messages[0].Role)
		assert.Equal(t, "user", payload.Messages[1].Role)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"answer"}}]}`))
	}))
	defer srv.Close()

	p := NewOpenAICompatible(OpenAICompatibleConfig{
		Name:       "openai",
		BaseURL:    srv.URL,
		APIKey:     "test-key",
		Model:      "gpt-test",
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
	})

	text, err := p.Complete(context.Background(), "sys", "usr", 1500)
	require.NoError(t, err)
	assert.Equal(t, "answer", text)
	assert.Equal(t, "openai", p.Name())
}

func TestOpenAICompatible_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	p := NewOpenAICompatible(OpenAICompatibleConfig{Name: "custom", BaseURL: srv.URL, Model: "m"})
	_, err := p.Complete(context.Background(), "s", "u", 100)
	var perr *core.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, core.ErrKindProvider, perr.Kind)
}

func TestOpenAICompatible_NoAuthHeaderWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	p := NewOpenAICompatible(OpenAICompatibleConfig{
		Name: "local", BaseURL: srv.URL, Model: "m",
		AuthHeader: "Authorization", AuthPrefix: "Bearer ",
	})
	_, err := p.Complete(context.Background(), "s", "u", 100)
	require.NoError(t, err)
}

func TestProviderError_Error(t *testing.T) {
	err := &core.ProviderError{Kind: core.ErrKindTransport, Message: "dial tcp: refused"}
	assert.Contains(t, err.Error(), "dial tcp: refused")
	var target *core.ProviderError
	assert.True(t, errors.As(error(err), &target))
}
