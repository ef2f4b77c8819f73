package console

import (
	"fmt"
	"strings"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

const (
	boardHeader = "  1   2   3   4   5   6   7"
	rowSep      = "|---|---|---|---|---|---|---|"
)

// Render draws the board as text, top row first. It has no side effects.
func Render(board *domain.Board) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(boardHeader)
	sb.WriteString("\n")

	for row := 0; row < domain.Rows; row++ {
		sb.WriteString(rowSep)
		sb.WriteString("\n")
		for col := 0; col < domain.Columns; col++ {
			sb.WriteString("| ")
			sb.WriteString(board[row][col].Mark())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	sb.WriteString(rowSep)
	sb.WriteString("\n")
	return sb.String()
}

func RenderTally(tally domain.ScoreTally) string {
	var sb strings.Builder
	sb.WriteString("\n~~~~~~~Winner's Tally~~~~~~~\n")
	fmt.Fprintf(&sb, "        Player X: %d\n", tally.X)
	fmt.Fprintf(&sb, "        Player O: %d\n", tally.O)
	sb.WriteString("~~~~~~~~~~~~~~~~~~~~~~~~~~~~\n")
	return sb.String()
}

// OutcomeMessage is the line printed when a round ends.
func OutcomeMessage(outcome domain.RoundOutcome) string {
	switch outcome.Status {
	case domain.StatusWon:
		return fmt.Sprintf("Player %s wins!", outcome.Winner.Mark())
	case domain.StatusTie:
		return "It's a tie. Game over!"
	default:
		return "Keep playing"
	}
}
