package game

import (
	"context"
	"fmt"
	"time"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/console"
	"github.com/iamasit07/4-in-a-row/console/pkg/uid"
)

// Console is what the controllers need from the terminal.
type Console interface {
	ReadColumn(player domain.PlayerID, available []int) (int, error)
	AskReplay() (bool, error)
	Printf(format string, a ...interface{})
	Println(a ...interface{})
}

type roundState int

const (
	awaitingMove roundState = iota
	evaluating
	terminal
)

// PlayRound runs one round from an empty board to a win or a tie and
// returns its record.
func PlayRound(ctx context.Context, c Console, sessionID string, number int) (domain.RoundRecord, error) {
	g := domain.NewGame()
	record := domain.RoundRecord{
		RoundID:   uid.GenerateRoundID(),
		SessionID: sessionID,
		Number:    number,
		StartedAt: time.Now(),
	}

	c.Println("The game is ON!")
	c.Println(console.Render(g.Board))

	state := awaitingMove
	for state != terminal {
		switch state {
		case awaitingMove:
			if err := ctx.Err(); err != nil {
				return record, err
			}

			column, err := c.ReadColumn(g.CurrentPlayer, g.Board.AvailableColumns())
			if err != nil {
				return record, err
			}

			// ReadColumn only hands back open columns, so a failure here is a bug
			if _, err := g.Drop(column); err != nil {
				return record, fmt.Errorf("failed to drop disk in column %d: %w", column+1, err)
			}
			c.Printf("\nPlaced an %s in column %d.\n\n", g.CurrentPlayer.Mark(), column+1)
			state = evaluating

		case evaluating:
			outcome := g.Settle()
			c.Println(console.Render(g.Board))
			if outcome.IsTerminal() {
				state = terminal
			} else {
				state = awaitingMove
			}
		}
	}

	c.Println(console.OutcomeMessage(g.Outcome))

	record.Outcome = g.Outcome
	record.TotalMoves = g.MoveCount
	record.Moves = make([]int, len(g.Moves))
	for i, col := range g.Moves {
		record.Moves[i] = col + 1
	}
	record.Board = g.Board.Cells()
	record.FinishedAt = time.Now()
	return record, nil
}
