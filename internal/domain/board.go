package domain

// Board is the 6x7 grid. Row 0 is the top row, row Rows-1 the bottom.
type Board [Rows][Columns]PlayerID

func NewBoard() *Board {
	return &Board{}
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}

func (b *Board) CellAt(row, col int) (PlayerID, error) {
	if !inBounds(row, col) {
		return Empty, ErrOutOfRange
	}
	return b[row][col], nil
}

func (b *Board) IsValidMove(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// a column stays playable while its top cell is empty
	return b[0][column] == Empty
}

// AvailableColumns lists the 0-based columns that can still take a disk.
func (b *Board) AvailableColumns() []int {
	validMoves := []int{}
	for col := 0; col < Columns; col++ {
		if b.IsValidMove(col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// DropDisk lets the disk fall to the lowest empty cell of the column and
// returns the row it landed on. A full column is rejected without changes.
func (b *Board) DropDisk(column int, player PlayerID) (int, error) {
	if player != PlayerX && player != PlayerO {
		return -1, ErrInvalidPlayer
	}
	if column < 0 || column >= Columns {
		return -1, ErrOutOfRange
	}

	for row := Rows - 1; row >= 0; row-- {
		if b[row][column] == Empty {
			b[row][column] = player
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

func (b *Board) OccupiedCount() int {
	count := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b[row][col] != Empty {
				count++
			}
		}
	}
	return count
}

func (b *Board) IsFull() bool {
	return b.OccupiedCount() == Rows*Columns
}

// Cells returns the board as plain ints, top row first, for storage.
func (b *Board) Cells() [][]int {
	cells := make([][]int, Rows)
	for row := range cells {
		cells[row] = make([]int, Columns)
		for col := 0; col < Columns; col++ {
			cells[row][col] = int(b[row][col])
		}
	}
	return cells
}
