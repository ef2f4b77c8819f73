package game

import (
	"context"
	"log"
	"time"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

// RoundRecorder receives finished rounds and tally updates. Implementations
// live in the repository packages.
type RoundRecorder interface {
	RecordRound(ctx context.Context, record domain.RoundRecord) error
	RecordTally(ctx context.Context, sessionID string, tally domain.ScoreTally) error
}

// Recorders fans a call out to every configured recorder. Failures are
// logged and never reach the players.
type Recorders struct {
	recorders []RoundRecorder
	timeout   time.Duration
}

func NewRecorders(timeout time.Duration, recorders ...RoundRecorder) *Recorders {
	active := make([]RoundRecorder, 0, len(recorders))
	for _, r := range recorders {
		if r != nil {
			active = append(active, r)
		}
	}
	return &Recorders{recorders: active, timeout: timeout}
}

func (rs *Recorders) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.recorders)
}

func (rs *Recorders) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if rs.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, rs.timeout)
}

func (rs *Recorders) RecordRound(ctx context.Context, record domain.RoundRecord) {
	if rs.Len() == 0 {
		return
	}
	for _, r := range rs.recorders {
		callCtx, cancel := rs.withTimeout(ctx)
		if err := r.RecordRound(callCtx, record); err != nil {
			log.Printf("[SESSION] Failed to record round %s: %v", record.RoundID, err)
		}
		cancel()
	}
}

func (rs *Recorders) RecordTally(ctx context.Context, sessionID string, tally domain.ScoreTally) {
	if rs.Len() == 0 {
		return
	}
	for _, r := range rs.recorders {
		callCtx, cancel := rs.withTimeout(ctx)
		if err := r.RecordTally(callCtx, sessionID, tally); err != nil {
			log.Printf("[SESSION] Failed to record tally for session %s: %v", sessionID, err)
		}
		cancel()
	}
}
