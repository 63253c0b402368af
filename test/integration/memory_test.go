package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/sandevgo/uniadvisor/internal/config"
	"github.com/sandevgo/uniadvisor/internal/core"
	"github.com/sandevgo/uniadvisor/internal/service/memory"
	"github.com/sandevgo/uniadvisor/pkg/log"
)

// Exercises the live memory service. Needs MEMORY_SERVICE_API_KEY in the
// environment or the runtime .env; skipped otherwise.
func TestRemoteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	_ = godotenv.Load(filepath.Join(config.GetRuntimePath(), ".env"))
	if os.Getenv("MEMORY_SERVICE_API_KEY") == "" {
		t.Skip("MEMORY_SERVICE_API_KEY not set")
	}

	var flushLog func()
	ctx, flushLog = log.NewContextWithLogger(ctx, true)
	defer flushLog()

	store := memory.NewRemoteStore(config.NewMemoryServiceConfig(ctx))
	sessionKey := "integration-" + uuid.NewString()
	defer store.Clear(ctx, sessionKey)

	ack := store.Store(ctx, sessionKey, core.ContextEntry{
		Role:      core.RoleUser,
		Content:   "integration round trip probe",
		Tags:      []string{core.TagQuery},
		Timestamp: time.Now().UTC(),
	})
	if !ack.Stored {
		t.Fatalf("store failed: %s", ack.Reason)
	}

	entries := store.Retrieve(ctx, sessionKey, 5)
	if len(entries) == 0 {
		t.Fatal("expected stored entry back")
	}
	if entries[len(entries)-1].Content != "integration round trip probe" {
		t.Fatalf("unexpected content: %q", entries[len(entries)-1].Content)
	}

	if !store.Clear(ctx, sessionKey) {
		t.Fatal("clear reported failure")
	}
}
