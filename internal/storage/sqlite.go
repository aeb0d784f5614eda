// Package storage keeps statistics of finished runs for the current session.
// Runs live in an in-memory SQLite database (pure-Go modernc.org/sqlite
// driver, no CGO) and are gone when the process exits.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// memoryDSN opens a private in-memory database.
const memoryDSN = ":memory:"

// Store manages the session database.
type Store struct {
	db *sql.DB
}

// Run is the record of one finished run.
type Run struct {
	ID           string // UUID
	GameID       string
	Score        int
	Level        int // 1-based
	Destroyed    int
	Escaped      int
	Fired        int
	Accuracy     float64
	DurationSecs int
	EndedAt      time.Time
}

// NewRun builds a run record from a game's end-of-run summary.
func NewRun(gameID string, s core.Summary) Run {
	return Run{
		GameID:       gameID,
		Score:        s.Score,
		Level:        s.DifficultyLevel,
		Destroyed:    s.RocksDestroyed,
		Escaped:      s.RocksEscaped,
		Fired:        s.BulletsFired,
		Accuracy:     s.Accuracy,
		DurationSecs: s.TimeSeconds,
	}
}

// OpenMemory creates an empty in-memory store and runs migrations.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			destroyed INTEGER NOT NULL DEFAULT 0,
			escaped INTEGER NOT NULL DEFAULT 0,
			fired INTEGER NOT NULL DEFAULT 0,
			accuracy REAL NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);
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

// SaveRun records a finished run. A missing ID or end time is filled in.
// Returns the stored record.
func (s *Store) SaveRun(r Run) (Run, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, game_id, score, level, destroyed, escaped, fired, accuracy, duration_secs, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Score, r.Level, r.Destroyed, r.Escaped, r.Fired,
		r.Accuracy, r.DurationSecs, r.EndedAt.UnixMilli(),
	)
	if err != nil {
		return r, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r, nil
}

const runColumns = `id, game_id, score, level, destroyed, escaped, fired, accuracy, duration_secs, ended_at`

// TopRuns retrieves the best N runs for the given game.
// Results are ordered by score descending, earlier runs first on ties.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, ended_at ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the most recent runs of every game.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY ended_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RunByID retrieves a run by its ID. Returns nil if it does not exist.
func (s *Store) RunByID(id string) (*Run, error) {
	rows, err := s.db.Query(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	runs, err := scanRuns(rows)
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return &runs[0], nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var endedAt int64
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &r.Level, &r.Destroyed, &r.Escaped,
			&r.Fired, &r.Accuracy, &r.DurationSecs, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.EndedAt = time.UnixMilli(endedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no runs exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE game_id = ?",
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

// ClearRuns deletes all runs for the given game.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID         string
	RunsCount      int
	HighScore      int
	AvgScore       float64
	TotalScore     int64
	BestLevel      int
	TotalDestroyed int64
	AvgAccuracy    float64
	LastPlayed     time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		        COALESCE(MAX(level), 0), COALESCE(SUM(destroyed), 0), COALESCE(AVG(accuracy), 0),
		        MAX(ended_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.RunsCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore,
		&stats.BestLevel, &stats.TotalDestroyed, &stats.AvgAccuracy, &lastPlayed)
	if errors.Is(err, sql.ErrNoRows) {
		return stats, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	if lastPlayed.Valid {
		stats.LastPlayed = time.UnixMilli(lastPlayed.Int64)
	}
	return stats, nil
}
