package advisor

// RecommendRequest is one recommendation turn for a session.
type RecommendRequest struct {
	SessionKey string   `json:"session_id"`
	Query      string   `json:"query"`
	Score      *float64 `json:"user_score,omitempty"`
	Country    string   `json:"preferred_country,omitempty"`
	Specialty  string   `json:"preferred_specialty,omitempty"`
}

// RecommendResult is the structured outcome of a recommendation turn.
// UniversitiesAnalyzed is populated even on failure: it is computed
// before the model call and is useful diagnostic context.
type RecommendResult struct {
	Success               bool   `json:"success"`
	Recommendations       string `json:"recommendations,omitempty"`
	UniversitiesAnalyzed  int    `json:"universities_analyzed"`
	TotalAvailable        int    `json:"total_universities_available,omitempty"`
	ContextUsed           bool   `json:"context_used"`
	SessionKey            string `json:"session_id,omitempty"`
	Error                 string `json:"error,omitempty"`
}

// CompareRequest asks for a side-by-side comparison of named universities.
type CompareRequest struct {
	SessionKey string   `json:"session_id"`
	Names      []string `json:"university_names"`
	Criteria   []string `json:"comparison_criteria,omitempty"`
}

// CompareResult is the structured outcome of a comparison turn.
type CompareResult struct {
	Success              bool   `json:"success"`
	Comparison           string `json:"comparison,omitempty"`
	UniversitiesCompared int    `json:"universities_compared,omitempty"`
	Error                string `json:"error,omitempty"`
}

// HealthInfo describes the agent's operational state for the health
// endpoint. Reported with HTTP 200 regardless of degradation.
type HealthInfo struct {
	Status             string   `json:"status"`
	ProviderConfigured bool     `json:"provider_configured"`
	Provider           string   `json:"provider"`
	Model              string   `json:"model"`
	MemoryBackend      string   `json:"memory_backend"`
	MemoryEnabled      bool     `json:"memory_enabled"`
	Capabilities       []string `json:"capabilities"`
}
