package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

type SessionRepo struct {
	DB *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{DB: db}
}

// CreateSession registers a session before its first round is played
func (r *SessionRepo) CreateSession(ctx context.Context, sessionID string, policy domain.TallyPolicy) error {
	query := `
	INSERT INTO game_sessions (session_id, score_policy)
	VALUES ($1, $2)
	ON CONFLICT (session_id) DO NOTHING;
	`
	_, err := r.DB.ExecContext(ctx, query, sessionID, string(policy))
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// UpdateTally overwrites the session's win counters
func (r *SessionRepo) UpdateTally(ctx context.Context, sessionID string, tally domain.ScoreTally) error {
	query := `
	UPDATE game_sessions
	SET x_wins = $2, o_wins = $3, updated_at = NOW()
	WHERE session_id = $1;
	`
	res, err := r.DB.ExecContext(ctx, query, sessionID, tally.X, tally.O)
	if err != nil {
		return fmt.Errorf("failed to update tally: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("session %s not found", sessionID)
	}
	return nil
}
