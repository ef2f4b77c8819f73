package domain

// Game is the state of a single round.
type Game struct {
	Board         *Board
	CurrentPlayer PlayerID
	Outcome       RoundOutcome
	MoveCount     int
	Moves         []int // 0-based columns in play order
}

func NewGame() *Game {
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: PlayerX,
		Outcome:       RoundOutcome{Status: StatusInProgress, Winner: Empty},
	}
}

// Drop places the current player's disk without evaluating the board.
func (g *Game) Drop(column int) (int, error) {
	if g.IsFinished() {
		return -1, ErrGameOver
	}

	if !g.Board.IsValidMove(column) {
		return -1, ErrInvalidMove
	}

	row, err := g.Board.DropDisk(column, g.CurrentPlayer)
	if err != nil {
		return -1, err
	}

	g.MoveCount++
	g.Moves = append(g.Moves, column)
	return row, nil
}

// Settle evaluates the board for the player who just dropped a disk and
// hands the turn over if the round is still going.
func (g *Game) Settle() RoundOutcome {
	g.Outcome = Evaluate(g.Board, g.CurrentPlayer)
	if !g.Outcome.IsTerminal() {
		g.CurrentPlayer = Opponent(g.CurrentPlayer)
	}
	return g.Outcome
}

func (g *Game) IsFinished() bool {
	return g.Outcome.IsTerminal()
}
