package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardFromRows builds a board from top-to-bottom rows of 'X', 'O' and ' '.
func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	require.Len(t, rows, Rows)

	b := NewBoard()
	for r, line := range rows {
		require.Len(t, line, Columns)
		for c, ch := range line {
			switch ch {
			case 'X':
				b[r][c] = PlayerX
			case 'O':
				b[r][c] = PlayerO
			}
		}
	}
	return b
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, 0, b.OccupiedCount())
	assert.False(t, b.IsFull())
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			cell, err := b.CellAt(row, col)
			require.NoError(t, err)
			assert.Equal(t, Empty, cell)
		}
	}
}

func TestCellAtOutOfRange(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"negative column", 0, -1},
		{"row past bottom", Rows, 0},
		{"column past right edge", 0, Columns},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.CellAt(tt.row, tt.col)
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestDropDiskFallsToLowestEmptyCell(t *testing.T) {
	b := NewBoard()

	for i := 0; i < Rows; i++ {
		player := PlayerX
		if i%2 == 1 {
			player = PlayerO
		}
		row, err := b.DropDisk(2, player)
		require.NoError(t, err)
		assert.Equal(t, Rows-1-i, row)

		cell, err := b.CellAt(row, 2)
		require.NoError(t, err)
		assert.Equal(t, player, cell)

		// every cell above the landing row stays empty
		for above := 0; above < row; above++ {
			assert.Equal(t, Empty, b[above][2])
		}
	}
}

func TestDropDiskRejectsFullColumn(t *testing.T) {
	b := NewBoard()
	for i := 0; i < Rows; i++ {
		_, err := b.DropDisk(0, PlayerX)
		require.NoError(t, err)
	}
	before := *b

	row, err := b.DropDisk(0, PlayerO)
	assert.ErrorIs(t, err, ErrColumnFull)
	assert.Equal(t, -1, row)
	assert.Equal(t, before, *b)
}

func TestDropDiskRejectsBadInput(t *testing.T) {
	b := NewBoard()

	_, err := b.DropDisk(Columns, PlayerX)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = b.DropDisk(-1, PlayerX)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = b.DropDisk(3, Empty)
	assert.ErrorIs(t, err, ErrInvalidPlayer)

	assert.Equal(t, 0, b.OccupiedCount())
}

func TestAvailableColumnsTracksTopRow(t *testing.T) {
	b := boardFromRows(t,
		"X  O  X",
		"O  X  O",
		"X  O  X",
		"O  X  O",
		"X  O  X",
		"O  X  O",
	)

	assert.Equal(t, []int{1, 2, 4, 5}, b.AvailableColumns())
	for col := 0; col < Columns; col++ {
		assert.Equal(t, b[0][col] == Empty, b.IsValidMove(col), "column %d", col)
	}
	assert.False(t, b.IsValidMove(-1))
	assert.False(t, b.IsValidMove(Columns))
}

func TestCellsSnapshot(t *testing.T) {
	b := NewBoard()
	_, err := b.DropDisk(3, PlayerO)
	require.NoError(t, err)

	cells := b.Cells()
	require.Len(t, cells, Rows)
	assert.Equal(t, []int{0, 0, 0, 2, 0, 0, 0}, cells[Rows-1])

	// the snapshot is detached from the board
	cells[0][0] = 1
	assert.Equal(t, Empty, b[0][0])
}
