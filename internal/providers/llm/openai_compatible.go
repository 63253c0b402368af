package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sandevgo/uniadvisor/internal/core"
)

type OpenAICompatible struct {
	baseProvider
	name         string
	authHeader   string
	authPrefix   string
	extraHeaders map[string]string
}

type OpenAICompatibleConfig struct {
	Name         string
	BaseURL      string
	APIKey       string
	Model        string
	AuthHeader   string // e.g., "Authorization"
	AuthPrefix   string // e.g., "Bearer "
	ExtraHeaders map[string]string
}

func NewOpenAICompatible(cfg OpenAICompatibleConfig) *OpenAICompatible {
	return &OpenAICompatible{
		baseProvider: newBaseProvider(cfg.BaseURL, cfg.APIKey, cfg.Model),
		name:         cfg.Name,
		authHeader:   cfg.AuthHeader,
		authPrefix:   cfg.AuthPrefix,
		extraHeaders: cfg.ExtraHeaders,
	}
}

func (o *OpenAICompatible) Name() string {
	return o.name
}

func (o *OpenAICompatible) Complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	type msg struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	payload := map[string]any{
		"model":      o.model,
		"max_tokens": maxTokens,
		"messages": []msg{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	headers := make(map[string]string)
	if o.authHeader != "" && o.apiKey != "" {
		headers[o.authHeader] = o.authPrefix + o.apiKey
	}
	for k, v := range o.extraHeaders {
		headers[k] = v
	}

	resp, err := o.doRequest(ctx, http.MethodPost, "/v1/chat/completions", payload, headers)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	return parseOpenAIResponse(resp)
}

func parseOpenAIResponse(resp *http.Response) (string, error) {
	if resp.StatusCode != http.StatusOK {
		return "", readError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &core.ProviderError{Kind: core.ErrKindTransport, Message: fmt.Sprintf("read body: %v", err)}
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", &core.ProviderError{Kind: core.ErrKindProvider, Message: fmt.Sprintf("decode: %v", err)}
	}
	if len(result.Choices) == 0 {
		return "", &core.ProviderError{Kind: core.ErrKindProvider, Message: fmt.Sprintf("empty choices: %s", string(data))}
	}
	return result.Choices[0].Message.Content, nil
}
