package advisor

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	tk     *tiktoken.Tiktoken
	tkErr  error
	tkOnce sync.Once
)

// promptTokens counts tokens across the prompt parts for logging and
// metrics. Returns 0 when the encoding cannot be loaded (e.g. offline):
// token accounting is observability, never a reason to fail a turn.
func promptTokens(parts ...string) int {
	tkOnce.Do(func() {
		tk, tkErr = tiktoken.GetEncoding("cl100k_base")
	})
	if tkErr != nil {
		return 0
	}

	total := 0
	for _, p := range parts {
		if p == "" {
			continue
		}
		total += len(tk.Encode(p, nil, nil))
	}
	return total
}
