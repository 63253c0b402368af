package core

import "context"

// CatalogQuery narrows, sorts and pages a candidate fetch.
type CatalogQuery struct {
	Filters FilterCriteria
	Limit   int
	Offset  int
	SortBy  string // name | ranking | tuition_fee | acceptance_rate
	Desc    bool
}

// CatalogGateway supplies candidate records for prompting. The advisor
// never mutates what it returns; order is gateway-defined (name-sorted
// unless the query says otherwise).
type CatalogGateway interface {
	// Candidates returns at most Limit matching records plus the total
	// number of matches before paging.
	Candidates(ctx context.Context, q CatalogQuery) ([]CandidateRecord, int, error)
	// Search does a fuzzy lookup over name, description and city.
	Search(ctx context.Context, query string) ([]CandidateRecord, error)
}
