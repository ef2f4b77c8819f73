package domain

// the four scan directions, each with the range of starting cells that keeps
// a full window of ToWin cells on the board
var scans = []struct {
	deltaRow, deltaCol int
	rowFrom, rowTo     int
	colFrom, colTo     int
}{
	{0, 1, 0, Rows - 1, 0, Columns - ToWin},          // horizontal
	{1, 0, 0, Rows - ToWin, 0, Columns - 1},          // vertical
	{1, -1, 0, Rows - ToWin, ToWin - 1, Columns - 1}, // diagonal /
	{1, 1, 0, Rows - ToWin, 0, Columns - ToWin},      // diagonal \
}

// HasAlignment reports whether player owns ToWin consecutive cells anywhere.
func HasAlignment(board *Board, player PlayerID) bool {
	if player == Empty {
		return false
	}

	for _, s := range scans {
		for row := s.rowFrom; row <= s.rowTo; row++ {
			for col := s.colFrom; col <= s.colTo; col++ {
				if countRun(board, row, col, s.deltaRow, s.deltaCol, player) == ToWin {
					return true
				}
			}
		}
	}
	return false
}

// countRun counts up to ToWin cells owned by player starting at (row, col).
func countRun(board *Board, row, col, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	for count < ToWin && inBounds(row, col) && board[row][col] == player {
		count++
		row += deltaRow
		col += deltaCol
	}
	return count
}

// Evaluate checks the board after player moved. Only the mover can have just
// completed a line, so the opponent is not scanned.
func Evaluate(board *Board, player PlayerID) RoundOutcome {
	if HasAlignment(board, player) {
		return RoundOutcome{Status: StatusWon, Winner: player}
	}

	if board.IsFull() {
		return RoundOutcome{Status: StatusTie, Winner: Empty}
	}

	return RoundOutcome{Status: StatusInProgress, Winner: Empty}
}
