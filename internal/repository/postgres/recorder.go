package postgres

import (
	"context"
	"database/sql"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

// Recorder keeps the round history of a session in Postgres.
type Recorder struct {
	Games    *GameRepo
	Sessions *SessionRepo
}

func NewRecorder(db *sql.DB) *Recorder {
	return &Recorder{
		Games:    NewGameRepo(db),
		Sessions: NewSessionRepo(db),
	}
}

func (r *Recorder) RecordRound(ctx context.Context, record domain.RoundRecord) error {
	return r.Games.SaveRound(ctx, record)
}

func (r *Recorder) RecordTally(ctx context.Context, sessionID string, tally domain.ScoreTally) error {
	return r.Sessions.UpdateTally(ctx, sessionID, tally)
}
