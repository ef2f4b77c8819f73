package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

type GameRepo struct {
	DB *sql.DB
}

func NewGameRepo(db *sql.DB) *GameRepo {
	return &GameRepo{DB: db}
}

// SaveRound stores a finished round and bumps the session's round count in
// one transaction
func (r *GameRepo) SaveRound(ctx context.Context, record domain.RoundRecord) error {
	boardJSON, err := json.Marshal(record.Board)
	if err != nil {
		return fmt.Errorf("failed to marshal board state: %w", err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	if err := touchSessionTx(ctx, tx, record.SessionID); err != nil {
		return err
	}

	var winner sql.NullString
	if mark := record.WinnerMark(); mark != "" {
		winner = sql.NullString{String: mark, Valid: true}
	}

	query := `
	INSERT INTO rounds (round_id, session_id, round_number, status, winner, total_moves, moves, board_state, duration_seconds, started_at, finished_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (round_id) DO NOTHING;
	`
	_, err = tx.ExecContext(ctx, query,
		record.RoundID,
		record.SessionID,
		record.Number,
		string(record.Outcome.Status),
		winner,
		record.TotalMoves,
		pq.Array(record.Moves),
		boardJSON,
		int(record.Duration().Seconds()),
		record.StartedAt,
		record.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert round record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// touchSessionTx creates the session row on its first round and counts the
// round otherwise
func touchSessionTx(ctx context.Context, tx *sql.Tx, sessionID string) error {
	query := `
	INSERT INTO game_sessions (session_id, rounds_played)
	VALUES ($1, 1)
	ON CONFLICT (session_id) DO UPDATE SET
		rounds_played = game_sessions.rounds_played + 1,
		updated_at = NOW();
	`
	if _, err := tx.ExecContext(ctx, query, sessionID); err != nil {
		return fmt.Errorf("failed to update session in transaction: %w", err)
	}
	return nil
}
