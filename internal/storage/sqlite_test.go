package storage

import (
	"math"
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("tetris", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("breakout", 350); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []int{200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d].Score = %d, expected %d", i, scores[i].Score, want)
		}
		if scores[i].GameID != "tetris" {
			t.Errorf("scores[%d].GameID = %q, expected tetris", i, scores[i].GameID)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d].CreatedAt not parsed", i)
		}
	}

	breakoutScores, err := store.TopScores("breakout", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(breakoutScores) != 1 {
		t.Errorf("Expected 1 breakout score, got %d", len(breakoutScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("tetris", (i+1)*100)
	}

	scores, err := store.TopScores("tetris", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores("tetris", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("TopScores(0) returned %d scores, expected 5", len(scores))
	}
}

func TestStoreTopScoresTieOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveScore("breakout", 300)
	second, _ := store.SaveScore("breakout", 300)

	scores, err := store.TopScores("breakout", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].ID != first || scores[1].ID != second {
		t.Errorf("Tied scores should keep insertion order, got IDs %d, %d", scores[0].ID, scores[1].ID)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("tetris", 100)
	store.SaveScore("tetris", 300)
	store.SaveScore("tetris", 200)

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreRank(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", 1500)
	store.SaveScore("tetris", 700)
	store.SaveScore("tetris", 300)

	tests := []struct {
		score    int
		expected int
	}{
		{2000, 1},
		{1500, 1},
		{1000, 2},
		{300, 3},
		{0, 4},
	}

	for _, tt := range tests {
		rank, err := store.Rank("tetris", tt.score)
		if err != nil {
			t.Fatalf("Rank() failed: %v", err)
		}
		if rank != tt.expected {
			t.Errorf("Rank(%d) = %d, expected %d", tt.score, rank, tt.expected)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", 100)
	store.SaveScore("tetris", 200)
	store.SaveScore("breakout", 300)

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	tetrisScores, _ := store.TopScores("tetris", 10)
	if len(tetrisScores) != 0 {
		t.Errorf("Expected 0 tetris scores after clear, got %d", len(tetrisScores))
	}

	breakoutScores, _ := store.TopScores("breakout", 10)
	if len(breakoutScores) != 1 {
		t.Errorf("Breakout scores should not be affected by clearing tetris")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		store.SaveScore("tetris", i*10)
	}

	scores, err := store.AllScores("tetris")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", 100)
	store.SaveScore("tetris", 200)
	store.SaveScore("tetris", 300)

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("TotalScore = %d, expected 600", stats.TotalScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.Median != 200 {
		t.Errorf("Median = %v, expected 200", stats.Median)
	}

	// Population standard deviation of 100, 200, 300
	want := math.Sqrt(20000.0 / 3)
	if math.Abs(stats.StdDev-want) > 1e-9 {
		t.Errorf("StdDev = %v, expected %v", stats.StdDev, want)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreGameStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("breakout")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 || stats.AvgScore != 0 || stats.StdDev != 0 {
		t.Errorf("Expected zero stats for empty game, got %+v", stats)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", 100)
	store.SaveScore("breakout", 350)
	store.SaveScore("breakout", 150)

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["breakout"].GamesCount != 2 || all["breakout"].HighScore != 350 {
		t.Errorf("breakout stats = %+v", all["breakout"])
	}
	if all["tetris"].AvgScore != 100 {
		t.Errorf("tetris mean = %v, expected 100", all["tetris"].AvgScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
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
