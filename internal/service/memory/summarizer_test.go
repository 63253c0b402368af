package memory

import (
	"strings"
	"testing"

	"github.com/sandevgo/uniadvisor/internal/core"
)

func TestDigest(t *testing.T) {
	tests := []struct {
		name    string
		entries []core.ContextEntry
		want    string
	}{
		{
			name:    "empty entries",
			entries: nil,
			want:    "",
		},
		{
			name: "no user entries",
			entries: []core.ContextEntry{
				{Role: core.RoleAssistant, Content: "here are some options"},
				{Role: core.RoleSystemNote, Content: "compared MIT, Stanford"},
			},
			want: "",
		},
		{
			name: "single user entry",
			entries: []core.ContextEntry{
				{Role: core.RoleUser, Content: "CS programs in the USA"},
			},
			want: "- Previous query: CS programs in the USA",
		},
		{
			name: "assistant entries are skipped",
			entries: []core.ContextEntry{
				{Role: core.RoleUser, Content: "first"},
				{Role: core.RoleAssistant, Content: "answer"},
				{Role: core.RoleUser, Content: "second"},
			},
			want: "- Previous query: first\n- Previous query: second",
		},
		{
			name: "only latest three user entries survive",
			entries: []core.ContextEntry{
				{Role: core.RoleUser, Content: "one"},
				{Role: core.RoleUser, Content: "two"},
				{Role: core.RoleUser, Content: "three"},
				{Role: core.RoleUser, Content: "four"},
			},
			want: "- Previous query: two\n- Previous query: three\n- Previous query: four",
		},
		{
			name: "blank user entries are skipped",
			entries: []core.ContextEntry{
				{Role: core.RoleUser, Content: "   "},
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Digest(tt.entries); got != tt.want {
				t.Errorf("Digest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDigestBoundsEntryLength(t *testing.T) {
	long := strings.Repeat("x", 500)
	got := Digest([]core.ContextEntry{{Role: core.RoleUser, Content: long}})

	want := "- Previous query: " + strings.Repeat("x", digestPrefix)
	if got != want {
		t.Errorf("Digest() did not truncate to %d characters: got %d", digestPrefix, len(got))
	}
}

func TestDigestTruncatesRuneSafe(t *testing.T) {
	long := strings.Repeat("ü", 150)
	got := Digest([]core.ContextEntry{{Role: core.RoleUser, Content: long}})

	if want := "- Previous query: " + strings.Repeat("ü", digestPrefix); got != want {
		t.Errorf("Digest() broke multibyte content: %q", got)
	}
}
