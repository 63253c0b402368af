package llm

// NewCustomOpenAI points the OpenAI-compatible provider at a self-hosted
// endpoint (vLLM, LiteLLM proxy, etc.).
func NewCustomOpenAI(baseURL, apiKey, model string) *OpenAICompatible {
	return NewOpenAICompatible(OpenAICompatibleConfig{
		Name:       "custom",
		BaseURL:    baseURL,
		APIKey:     apiKey,
		Model:      model,
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
	})
}
