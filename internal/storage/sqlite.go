// Package storage provides SQLite-based persistence for game scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64     `json:"id"`
	GameID    string    `json:"game_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// GameStats holds aggregated statistics for one game.
type GameStats struct {
	GameID     string    `json:"game_id"`
	GamesCount int       `json:"games"`
	HighScore  int       `json:"high_score"`
	AvgScore   float64   `json:"mean"`
	StdDev     float64   `json:"stddev"`
	Median     float64   `json:"median"`
	TotalScore int64     `json:"total"`
	LastPlayed time.Time `json:"last_played,omitzero"`
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending, older entries first on ties.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanEntries(rows)
}

// AllScores retrieves all scores for the given game (no limit).
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanEntries(rows)
}

// scanEntries drains rows into score entries and closes them.
func scanEntries(rows *sql.Rows) ([]ScoreEntry, error) {
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both driver-decoded times and raw SQLite strings.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Rank returns the 1-based leaderboard position a score would take for
// the given game. Ties share the better position.
func (s *Store) Rank(gameID string, score int) (int, error) {
	var better int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM scores WHERE game_id = ? AND score > ?",
		gameID, score,
	).Scan(&better)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query rank: %w", err)
	}
	return better + 1, nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GetGameStats retrieves aggregated statistics for a specific game.
// A game with no scores yields zero stats, not an error.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	rows, err := s.db.Query(
		"SELECT score, created_at FROM scores WHERE game_id = ?",
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	defer rows.Close()

	stats := &GameStats{GameID: gameID}
	var scores []float64
	for rows.Next() {
		var score int
		var createdAt any
		if err := rows.Scan(&score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		scores = append(scores, float64(score))
		stats.TotalScore += int64(score)
		stats.HighScore = max(stats.HighScore, score)
		if t := parseTime(createdAt); t.After(stats.LastPlayed) {
			stats.LastPlayed = t
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	summarize(stats, scores)
	return stats, nil
}

// summarize fills the distribution fields from raw scores.
func summarize(stats *GameStats, scores []float64) {
	stats.GamesCount = len(scores)
	if len(scores) == 0 {
		return
	}

	stats.AvgScore, stats.StdDev = stat.PopMeanStdDev(scores, nil)

	sort.Float64s(scores)
	stats.Median = stat.Quantile(0.5, stat.Empirical, scores, nil)
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query("SELECT DISTINCT game_id FROM scores")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan game id: %w", err)
		}
		ids = append(ids, id)
	}
	// Release the connection before issuing per-game queries
	if err := errors.Join(rows.Err(), rows.Close()); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	stats := make(map[string]*GameStats, len(ids))
	for _, id := range ids {
		gs, err := s.GetGameStats(id)
		if err != nil {
			return nil, err
		}
		stats[id] = gs
	}
	return stats, nil
}
