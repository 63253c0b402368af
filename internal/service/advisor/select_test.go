package advisor

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/sandevgo/uniadvisor/internal/core"
)

func uni(name string, minScores ...float64) core.CandidateRecord {
	rec := core.CandidateRecord{Name: name}
	for i, s := range minScores {
		rec.Requirements = append(rec.Requirements, core.Requirement{
			Specialty:    fmt.Sprintf("field-%d", i),
			MinimumScore: s,
		})
	}
	return rec
}

func ptr(v float64) *float64 { return &v }

func TestSelectCandidates(t *testing.T) {
	tests := []struct {
		name    string
		records []core.CandidateRecord
		score   *float64
		want    []string
	}{
		{
			name:    "no score keeps gateway order",
			records: []core.CandidateRecord{uni("b", 1500), uni("a", 1200)},
			score:   nil,
			want:    []string{"b", "a"},
		},
		{
			name:    "score filters out unreachable candidates",
			records: []core.CandidateRecord{uni("hard", 1550), uni("fit", 1300), uni("mixed", 1550, 1200)},
			score:   ptr(1400),
			want:    []string{"fit", "mixed"},
		},
		{
			name:    "candidate without requirements never survives a score filter",
			records: []core.CandidateRecord{uni("empty"), uni("fit", 1000)},
			score:   ptr(1400),
			want:    []string{"fit"},
		},
		{
			name:    "boundary score qualifies",
			records: []core.CandidateRecord{uni("exact", 1400)},
			score:   ptr(1400),
			want:    []string{"exact"},
		},
		{
			name:    "empty input",
			records: nil,
			score:   ptr(1400),
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selectCandidates(tt.records, tt.score)

			var names []string
			for _, rec := range got {
				names = append(names, rec.Name)
			}
			if !reflect.DeepEqual(names, tt.want) {
				t.Errorf("selectCandidates() = %v, want %v", names, tt.want)
			}
		})
	}
}

func TestSelectCandidatesCap(t *testing.T) {
	var records []core.CandidateRecord
	for i := 0; i < 25; i++ {
		records = append(records, uni(fmt.Sprintf("u%d", i), 1000))
	}

	got := selectCandidates(records, nil)
	if len(got) != candidateCap {
		t.Fatalf("expected %d candidates, got %d", candidateCap, len(got))
	}
	// first ten in gateway order, not a ranking
	for i := 0; i < candidateCap; i++ {
		if got[i].Name != fmt.Sprintf("u%d", i) {
			t.Errorf("position %d: got %s", i, got[i].Name)
		}
	}

	withScore := selectCandidates(records, ptr(1200))
	if len(withScore) != candidateCap {
		t.Fatalf("expected %d candidates with score, got %d", candidateCap, len(withScore))
	}
}

func TestSelectCandidatesIdempotent(t *testing.T) {
	records := []core.CandidateRecord{uni("a", 1200), uni("b", 1550), uni("c", 1000)}
	score := ptr(1300)

	first := selectCandidates(records, score)
	second := selectCandidates(records, score)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("selection is not idempotent: %v vs %v", first, second)
	}
}
