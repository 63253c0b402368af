package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sandevgo/uniadvisor/internal/core"
)

type Anthropic struct {
	baseProvider
}

func NewAnthropic(apiKey, model string) *Anthropic {
	return &Anthropic{
		baseProvider: newBaseProvider("https://api.anthropic.com", apiKey, model),
	}
}

func (a *Anthropic) Name() string {
	return "anthropic"
}

func (a *Anthropic) Complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	type msg struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	payload := map[string]any{
		"model":      a.model,
		"max_tokens": maxTokens,
		"system":     system,
		"messages":   []msg{{Role: "user", Content: user}},
	}

	headers := map[string]string{
		"x-api-key":         a.apiKey,
		"anthropic-version": "2023-06-01",
	}

	resp, err := a.doRequest(ctx, http.MethodPost, "/v1/messages", payload, headers)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", readError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &core.ProviderError{Kind: core.ErrKindTransport, Message: fmt.Sprintf("read body: %v", err)}
	}

	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", &core.ProviderError{Kind: core.ErrKindProvider, Message: fmt.Sprintf("decode: %v", err)}
	}

	var text string
	for _, c := range result.Content {
		if c.Type == "text" {
			text += c.Text
		}
	}
	if text == "" {
		return "", &core.ProviderError{Kind: core.ErrKindProvider, Message: fmt.Sprintf("empty content: %s", string(data))}
	}
	return text, nil
}
