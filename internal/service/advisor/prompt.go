package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sandevgo/uniadvisor/internal/core"
)

const advisorPersona = `You are an expert university advisor helping students choose the right university.

Your role:
- Analyze universities based on rankings, requirements, costs, and acceptance rates
- Provide personalized recommendations matching user criteria
- Explain pros and cons clearly
- Consider cultural fit, financial aspects, and academic strength

Be concise, practical, and honest about chances of admission.`

const comparatorPersona = `You are a university advisor. Compare universities objectively.`

var defaultCompareCriteria = []string{"ranking", "tuition fees", "acceptance rate", "requirements"}

// buildRecommendationPrompt assembles the system and user messages for a
// recommendation turn. The context digest, not raw history, goes into the
// system text; absent filters are omitted entirely.
func buildRecommendationPrompt(digest string, f core.FilterCriteria, query string, candidates []core.CandidateRecord) (string, string) {
	var system strings.Builder
	system.WriteString(advisorPersona)

	if digest != "" {
		system.WriteString("\n\nPrevious conversation context:\n")
		system.WriteString(digest)
	}

	var criteria []string
	if f.Score != nil {
		criteria = append(criteria, fmt.Sprintf("User score: %g", *f.Score))
	}
	if f.Country != "" {
		criteria = append(criteria, "Preferred country: "+f.Country)
	}
	if f.Specialty != "" {
		criteria = append(criteria, "Preferred specialty: "+f.Specialty)
	}
	if len(criteria) > 0 {
		system.WriteString("\n\nUser criteria:\n")
		system.WriteString(strings.Join(criteria, "\n"))
	}

	user := fmt.Sprintf(`User query: %s

Available universities:
%s

Please provide:
1. Top 3-5 recommended universities with reasoning
2. Comparison of pros/cons for each
3. Explanation of why these match the user's criteria
4. Any additional advice for the application process`, query, marshalCandidates(candidates))

	return system.String(), user
}

// buildComparisonPrompt assembles the fixed neutral-comparator prompt.
// No context injection here: comparisons are self-contained.
func buildComparisonPrompt(criteria []string, candidates []core.CandidateRecord) (string, string) {
	if len(criteria) == 0 {
		criteria = defaultCompareCriteria
	}

	user := fmt.Sprintf(`Compare these universities based on: %s

Universities:
%s

Provide:
1. Side-by-side comparison table
2. Key differences
3. Which university is better for specific goals
4. Overall recommendation`, strings.Join(criteria, ", "), marshalCandidates(candidates))

	return comparatorPersona, user
}

func marshalCandidates(candidates []core.CandidateRecord) string {
	data, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}
