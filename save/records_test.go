package save

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// testManager opens a throwaway gdata manager and removes its directory when
// the test finishes. Returns nil when the platform offers no storage; callers
// then exercise the degraded mode instead.
func testManager(t *testing.T, name string) *gdata.Manager {
	t.Helper()
	appName := fmt.Sprintf("cardboard_test_%s_%d", name, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil
	}

	t.Cleanup(func() {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			os.RemoveAll(filepath.Join(homeDir, ".local", "share", appName))
		}
	})

	return manager
}

func TestStoreRecordScore(t *testing.T) {
	store := NewStore(testManager(t, "record"))

	if store.Best("default") != 0 {
		t.Fatalf("expected zero best for fresh store")
	}

	improved, err := store.RecordScore("default", 500)
	if err != nil {
		t.Fatalf("RecordScore failed: %v", err)
	}
	if !improved {
		t.Fatalf("first score should improve the record")
	}

	improved, err = store.RecordScore("default", 400)
	if err != nil {
		t.Fatalf("RecordScore failed: %v", err)
	}
	if improved {
		t.Fatalf("lower score should not improve the record")
	}
	if store.Best("default") != 500 {
		t.Fatalf("expected best 500, got %d", store.Best("default"))
	}

	improved, err = store.RecordScore("default", 650)
	if err != nil {
		t.Fatalf("RecordScore failed: %v", err)
	}
	if !improved || store.Best("default") != 650 {
		t.Fatalf("expected improved best 650, got %d", store.Best("default"))
	}
}

func TestStoreRoundTrip(t *testing.T) {
	manager := testManager(t, "roundtrip")
	if manager == nil {
		t.Skip("no storage available on this platform")
	}

	first := NewStore(manager)
	if _, err := first.RecordScore("default", 720); err != nil {
		t.Fatalf("RecordScore failed: %v", err)
	}
	if _, err := first.RecordScore("big", 310); err != nil {
		t.Fatalf("RecordScore failed: %v", err)
	}

	// A second store over the same manager must see the saved records.
	second := NewStore(manager)
	if second.Best("default") != 720 {
		t.Fatalf("expected persisted best 720, got %d", second.Best("default"))
	}
	if second.Best("big") != 310 {
		t.Fatalf("expected persisted best 310, got %d", second.Best("big"))
	}
}

func TestStoreDegradedMode(t *testing.T) {
	store := NewStore(nil)

	improved, err := store.RecordScore("default", 100)
	if err != nil {
		t.Fatalf("degraded RecordScore should not error: %v", err)
	}
	if !improved {
		t.Fatalf("degraded store should still track records in memory")
	}
	if store.Best("default") != 100 {
		t.Fatalf("expected in-memory best 100, got %d", store.Best("default"))
	}
}

func TestStoreIgnoresEmptyDeck(t *testing.T) {
	store := NewStore(nil)
	if improved, err := store.RecordScore("", 10); err != nil || improved {
		t.Fatalf("empty deck name should be ignored, got improved=%v err=%v", improved, err)
	}
}
