package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{Rule: "RL", GridSize: 150, Iterations: 11000, Stalled: true, Duration: 3 * time.Minute},
		{Rule: "RL", GridSize: 150, Iterations: 500, Stalled: false, Duration: 10 * time.Second},
		{Rule: "LLRR", GridSize: 100, Iterations: 90000, Stalled: true, Duration: 5 * time.Minute},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	rlRuns, err := store.RecentRuns("RL", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(rlRuns) != 2 {
		t.Errorf("Expected 2 RL runs, got %d", len(rlRuns))
	}

	allRuns, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(allRuns) != 3 {
		t.Errorf("Expected 3 runs total, got %d", len(allRuns))
	}

	// Newest first: the LLRR record was inserted last.
	if allRuns[0].Rule != "LLRR" {
		t.Errorf("Expected newest run first, got rule %s", allRuns[0].Rule)
	}
	if !allRuns[0].Stalled {
		t.Error("Stalled flag should survive a round trip")
	}
	if allRuns[0].Duration != 5*time.Minute {
		t.Errorf("Expected 5m duration, got %v", allRuns[0].Duration)
	}
}

func TestStoreLongestRuns(t *testing.T) {
	store := openTestStore(t)

	for _, iters := range []uint64{100, 5000, 42} {
		if _, err := store.SaveRun(RunRecord{Rule: "RL", GridSize: 50, Iterations: iters}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.LongestRuns("RL", 2)
	if err != nil {
		t.Fatalf("LongestRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs with limit, got %d", len(runs))
	}
	if runs[0].Iterations != 5000 || runs[1].Iterations != 100 {
		t.Errorf("Runs not ordered by iterations: %d, %d", runs[0].Iterations, runs[1].Iterations)
	}
}

func TestStoreStatsForRule(t *testing.T) {
	store := openTestStore(t)

	for _, iters := range []uint64{100, 300} {
		if _, err := store.SaveRun(RunRecord{Rule: "RLR", GridSize: 80, Iterations: iters}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.StatsForRule("RLR")
	if err != nil {
		t.Fatalf("StatsForRule() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.Runs)
	}
	if stats.MaxIterations != 300 {
		t.Errorf("Expected max 300, got %d", stats.MaxIterations)
	}
	if stats.AvgIterations != 200 {
		t.Errorf("Expected avg 200, got %f", stats.AvgIterations)
	}
}

func TestStoreStatsForUnknownRule(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.StatsForRule("LLLL")
	if err != nil {
		t.Fatalf("StatsForRule() failed: %v", err)
	}
	if stats.Runs != 0 || stats.MaxIterations != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Rule: "RL", GridSize: 50, Iterations: 1})
	store.SaveRun(RunRecord{Rule: "LLRR", GridSize: 50, Iterations: 2})

	if err := store.ClearRuns("RL"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Rule != "LLRR" {
		t.Errorf("Expected only the LLRR run to survive, got %+v", runs)
	}
}
