package core

import "time"

const (
	AppName      = "UniAdvisor"
	AppUserAgent = "UniAdvisor-Agent/0.1"
	AppVersion   = "0.1.0"
)

const (
	RoleUser       = "user"
	RoleAssistant  = "assistant"
	RoleSystemNote = "system-note"
)

const (
	TagRecommendation = "recommendation"
	TagQuery          = "query"
	TagComparison     = "comparison"
)

// ContextEntry is one stored interaction record within a session.
// Immutable once stored; ordering is insertion order.
type ContextEntry struct {
	ID        string    `json:"id,omitempty"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// FilterCriteria are user-supplied constraints used both to query the
// catalog and to annotate stored context. Nil/empty fields mean "not set".
type FilterCriteria struct {
	Score     *float64
	Country   string
	Specialty string
}

// Requirement is one per-specialty admission requirement of a university.
type Requirement struct {
	Specialty    string   `json:"specialty"`
	MinimumScore float64  `json:"min_score"`
	Exams        []string `json:"exams,omitempty"`
}

// CandidateRecord is the read-only catalog projection used for prompting.
type CandidateRecord struct {
	Name           string        `json:"name"`
	Country        string        `json:"country"`
	City           string        `json:"city"`
	Ranking        int           `json:"ranking,omitempty"`
	Specialties    []string      `json:"specialties,omitempty"`
	Requirements   []Requirement `json:"requirements,omitempty"`
	TuitionFeeUSD  float64       `json:"tuition_fee_usd,omitempty"`
	AcceptanceRate float64       `json:"acceptance_rate,omitempty"`
	StudentCount   int           `json:"student_count,omitempty"`
}
