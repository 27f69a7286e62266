package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/wizardswar/wizards-war-go/internal/config"
)

// MatchRecord is one finished match in the history table.
type MatchRecord struct {
	MatchID       string
	Reason        string
	PlayerScore   int
	OpponentScore int
	Rounds        int
	FinishedAt    time.Time
}

// Store persists match history in a local sqlite database.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS match_history (
	match_id       TEXT PRIMARY KEY,
	reason         TEXT NOT NULL,
	player_score   INTEGER NOT NULL,
	opponent_score INTEGER NOT NULL,
	rounds         INTEGER NOT NULL,
	finished_at    TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_match_history_finished_at
	ON match_history (finished_at DESC);
`

// NewStore opens (creating if needed) the sqlite file and ensures the
// schema exists.
func NewStore(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", cfg.Path, err)
	}
	// modernc sqlite is a single-writer engine.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database %s: %w", cfg.Path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	logger.Info("match history store ready", zap.String("path", cfg.Path))
	return &Store{db: db, logger: logger}, nil
}

// SaveMatch upserts one finished match.
func (s *Store) SaveMatch(ctx context.Context, rec MatchRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO match_history
			(match_id, reason, player_score, opponent_score, rounds, finished_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(match_id) DO UPDATE SET
			reason = excluded.reason,
			player_score = excluded.player_score,
			opponent_score = excluded.opponent_score,
			rounds = excluded.rounds,
			finished_at = excluded.finished_at`,
		rec.MatchID, rec.Reason, rec.PlayerScore, rec.OpponentScore, rec.Rounds, rec.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("saving match %s: %w", rec.MatchID, err)
	}
	return nil
}

// ListMatches returns the most recent finished matches, newest first.
func (s *Store) ListMatches(ctx context.Context, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT match_id, reason, player_score, opponent_score, rounds, finished_at
		FROM match_history
		ORDER BY finished_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		if err := rows.Scan(&rec.MatchID, &rec.Reason, &rec.PlayerScore,
			&rec.OpponentScore, &rec.Rounds, &rec.FinishedAt); err != nil {
			return nil, fmt.Errorf("scanning match row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
