package game

import (
	"context"
	"log"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/console"
)

type sessionState int

const (
	playing sessionState = iota
	askReplay
	done
)

// Session plays rounds until the players decline a rematch, carrying the
// tally from one round to the next.
type Session struct {
	ID        string
	console   Console
	policy    domain.TallyPolicy
	recorders *Recorders

	tally  domain.ScoreTally
	rounds int
}

func NewSession(id string, c Console, policy domain.TallyPolicy, recorders *Recorders) *Session {
	if recorders == nil {
		recorders = NewRecorders(0)
	}
	return &Session{
		ID:        id,
		console:   c,
		policy:    policy,
		recorders: recorders,
	}
}

func (s *Session) Rounds() int {
	return s.rounds
}

// Run drives the session until the players stop or input runs out. The
// returned tally is the last one shown to the players.
func (s *Session) Run(ctx context.Context) (domain.ScoreTally, error) {
	var last domain.RoundOutcome

	state := playing
	for state != done {
		if err := ctx.Err(); err != nil {
			return s.tally, err
		}

		switch state {
		case playing:
			record, err := PlayRound(ctx, s.console, s.ID, s.rounds+1)
			if err != nil {
				return s.tally, err
			}
			s.rounds++
			last = record.Outcome
			log.Printf("[SESSION] Round %d of session %s finished: %s after %d moves",
				record.Number, s.ID, record.Outcome.Status, record.TotalMoves)
			s.recorders.RecordRound(ctx, record)
			state = askReplay

		case askReplay:
			again, err := s.console.AskReplay()
			if err != nil {
				return s.tally, err
			}
			if !again {
				state = done
				continue
			}

			s.console.Println("\nResuming the game!")
			s.tally = s.policy.Apply(s.tally, last)
			s.console.Printf("%s\n", console.RenderTally(s.tally))
			s.recorders.RecordTally(ctx, s.ID, s.tally)
			state = playing
		}
	}

	s.console.Println("Thanks for playing, bye!!")
	return s.tally, nil
}
