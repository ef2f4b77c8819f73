package domain

import "time"

// RoundRecord is the summary of a finished round handed to recorders.
type RoundRecord struct {
	RoundID    string
	SessionID  string
	Number     int
	Outcome    RoundOutcome
	TotalMoves int
	Moves      []int // 1-based, as the players typed them
	Board      [][]int
	StartedAt  time.Time
	FinishedAt time.Time
}

func (r RoundRecord) WinnerMark() string {
	if r.Outcome.Status != StatusWon {
		return ""
	}
	return r.Outcome.Winner.Mark()
}

func (r RoundRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
