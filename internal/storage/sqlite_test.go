package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "lanerush", Score: 100, Level: 2, Distance: 400, Letters: 7},
		{GameID: "lanerush", Score: 50, Level: 1, Distance: 180, Letters: 3},
		{GameID: "lanerush", Score: 200, Level: 3, Distance: 900, Letters: 14},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	// A different game's runs stay separate.
	if _, err := store.SaveRun(RunRecord{GameID: "other", Score: 500}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.TopRuns("lanerush", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(got))
	}
	if got[0].Score != 200 || got[1].Score != 100 || got[2].Score != 50 {
		t.Errorf("Runs not sorted by score descending: %v", got)
	}
	if got[0].Level != 3 || got[0].Distance != 900 || got[0].Letters != 14 {
		t.Errorf("Run details lost on round trip: %+v", got[0])
	}

	other, err := store.TopRuns("other", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 run for other game, got %d", len(other))
	}
}

func TestTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{GameID: "lanerush", Score: (i + 1) * 100, Level: 1})
	}

	got, err := store.TopRuns("lanerush", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(got))
	}
	if got[0].Score != 500 || got[1].Score != 400 || got[2].Score != 300 {
		t.Errorf("Top runs not in expected order: %v", got)
	}
}

func TestBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("lanerush")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty game, got %d", best)
	}

	store.SaveRun(RunRecord{GameID: "lanerush", Score: 100, Level: 1})
	store.SaveRun(RunRecord{GameID: "lanerush", Score: 300, Level: 2})
	store.SaveRun(RunRecord{GameID: "lanerush", Score: 200, Level: 2})

	best, err = store.BestScore("lanerush")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score 300, got %d", best)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "lanerush", Score: 100, Level: 1})
	store.SaveRun(RunRecord{GameID: "lanerush", Score: 200, Level: 2})
	store.SaveRun(RunRecord{GameID: "other", Score: 300, Level: 1})

	if err := store.ClearRuns("lanerush"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	cleared, _ := store.TopRuns("lanerush", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(cleared))
	}

	other, _ := store.TopRuns("other", 10)
	if len(other) != 1 {
		t.Error("Other game's runs affected by clear")
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "lanerush", Score: 100, Level: 2})
	store.SaveRun(RunRecord{GameID: "lanerush", Score: 300, Level: 5, Victory: true})
	store.SaveRun(RunRecord{GameID: "lanerush", Score: 200, Level: 3})

	stats, err := store.Stats("lanerush")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.RunCount != 3 {
		t.Errorf("RunCount = %d, want 3", stats.RunCount)
	}
	if stats.BestScore != 300 {
		t.Errorf("BestScore = %d, want 300", stats.BestScore)
	}
	if stats.BestLevel != 5 {
		t.Errorf("BestLevel = %d, want 5", stats.BestLevel)
	}
	if stats.Victories != 1 {
		t.Errorf("Victories = %d, want 1", stats.Victories)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
}

func TestOpenCreatesNestedDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
