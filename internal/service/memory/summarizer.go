package memory

import (
	"strings"

	"github.com/sandevgo/uniadvisor/internal/core"
)

const (
	// digestEntries caps how many past user turns make the digest.
	digestEntries = 3
	// digestPrefix bounds the per-entry excerpt so the system prompt
	// cannot grow with the stored content.
	digestPrefix = 100
)

// Digest reduces past turns to a short bulleted summary for prompt
// injection. Only user-authored entries contribute; the latest three
// appear in chronological order. Raw entries are never replayed in bulk.
func Digest(entries []core.ContextEntry) string {
	var queries []string
	for _, e := range entries {
		if e.Role != core.RoleUser {
			continue
		}
		content := strings.TrimSpace(e.Content)
		if content == "" {
			continue
		}
		if r := []rune(content); len(r) > digestPrefix {
			content = string(r[:digestPrefix])
		}
		queries = append(queries, content)
	}

	if len(queries) == 0 {
		return ""
	}
	if len(queries) > digestEntries {
		queries = queries[len(queries)-digestEntries:]
	}

	var sb strings.Builder
	for i, q := range queries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("- Previous query: ")
		sb.WriteString(q)
	}
	return sb.String()
}
