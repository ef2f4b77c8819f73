package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	PlayerX PlayerID = 1
	PlayerO PlayerID = 2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Mark is the symbol drawn in a cell; Empty draws a blank.
func (p PlayerID) Mark() string {
	switch p {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

func (p PlayerID) String() string {
	if p == Empty {
		return "empty"
	}
	return p.Mark()
}

// Opponent returns the player who moves after p.
func Opponent(p PlayerID) PlayerID {
	if p == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// to represent the round status
type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"
	StatusTie        GameStatus = "tie"
)

type RoundOutcome struct {
	Status GameStatus
	Winner PlayerID
}

func (o RoundOutcome) IsTerminal() bool {
	return o.Status == StatusWon || o.Status == StatusTie
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove   Error = "invalid move"
	ErrColumnFull    Error = "column is full"
	ErrOutOfRange    Error = "position out of range"
	ErrInvalidPlayer Error = "invalid player"
	ErrGameOver      Error = "round is already over"
)
