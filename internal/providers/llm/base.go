package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sandevgo/uniadvisor/internal/core"
)

type baseProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

func newBaseProvider(baseURL, apiKey, model string) baseProvider {
	return baseProvider{
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
	}
}

// doRequest issues a single HTTP call. Wire-level failures come back as
// transport-kind provider errors so the orchestrator can distinguish them
// from errors the backend reported itself.
func (b *baseProvider) doRequest(ctx context.Context, method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", core.AppUserAgent)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, &core.ProviderError{Kind: core.ErrKindTransport, Message: err.Error()}
	}
	return resp, nil
}

func (b *baseProvider) Model() string {
	return b.model
}

func (b *baseProvider) Configured() bool {
	return b.apiKey != ""
}

// readError drains a non-2xx response into a provider-kind error carrying
// the backend's raw diagnostic text.
func readError(resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &core.ProviderError{Kind: core.ErrKindTransport, Message: fmt.Sprintf("read body: %v", err)}
	}
	return &core.ProviderError{
		Kind:    core.ErrKindProvider,
		Message: fmt.Sprintf("http %d: %s", resp.StatusCode, string(data)),
	}
}
