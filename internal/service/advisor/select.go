package advisor

import "github.com/sandevgo/uniadvisor/internal/core"

// candidateCap bounds the prompt snapshot. A hard cap for prompt-size
// control, not a ranking: order stays whatever the gateway returned.
const candidateCap = 10

// selectCandidates applies the shared selection policy. With a score,
// only records the user plausibly qualifies for survive (at least one
// requirement minimum at or below the score); then the first candidateCap
// survivors are kept in gateway order.
func selectCandidates(records []core.CandidateRecord, score *float64) []core.CandidateRecord {
	selected := records
	if score != nil {
		selected = make([]core.CandidateRecord, 0, len(records))
		for _, rec := range records {
			for _, req := range rec.Requirements {
				if req.MinimumScore <= *score {
					selected = append(selected, rec)
					break
				}
			}
		}
	}
	if len(selected) > candidateCap {
		selected = selected[:candidateCap]
	}
	return selected
}
