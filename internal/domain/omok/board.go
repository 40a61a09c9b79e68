package omok

import (
	"fmt"
	"strings"

	errs "omok/internal/errors"
)

const (
	DefaultBoardSize = 15
	MinBoardSize     = 5
	MaxBoardSize     = 19
)

// Board is an N x N grid plus the side to move. Cells are stored row-major.
type Board struct {
	size  int
	cells []Cell
	turn  Cell
}

func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("board size %d: %w", size, errs.ErrInvalidBoardSize)
	}
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
		turn:  Black,
	}, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Turn() Cell {
	return b.turn
}

func (b *Board) SetTurn(turn Cell) {
	b.turn = turn
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.size && col < b.size
}

// Get panics on out-of-range coordinates; callers check InBounds first.
func (b *Board) Get(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

// Set writes a cell without validation. The search uses it to place and undo
// stones; everything else goes through Apply.
func (b *Board) Set(row, col int, cell Cell) {
	b.cells[b.index(row, col)] = cell
}

func (b *Board) IsEmpty(row, col int) bool {
	return b.Get(row, col) == Empty
}

// Apply places m.Color at (m.Row, m.Col) and passes the turn to the other side.
func (b *Board) Apply(m Move) error {
	if !b.InBounds(m.Row, m.Col) {
		return fmt.Errorf("apply %s: %w", m, errs.ErrOutOfBounds)
	}
	if !b.IsEmpty(m.Row, m.Col) {
		return fmt.Errorf("apply %s: %w", m, errs.ErrCellOccupied)
	}
	b.Set(m.Row, m.Col, m.Color)
	b.turn = m.Color.Opponent()
	return nil
}

func (b *Board) Center() (int, int) {
	return b.size / 2, b.size / 2
}

func (b *Board) StoneCount() int {
	n := 0
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

func (b *Board) IsFull() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

func (b *Board) Clone() *Board {
	clone := &Board{size: b.size, turn: b.turn}
	clone.cells = make([]Cell, len(b.cells))
	copy(clone.cells, b.cells)
	return clone
}

// Equal compares cells and turn.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size || b.turn != other.turn {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rows renders the grid as one string per row using Cell.Symbol.
func (b *Board) Rows() []string {
	rows := make([]string, b.size)
	line := make([]byte, b.size)
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			line[c] = b.Get(r, c).Symbol()
		}
		rows[r] = string(line)
	}
	return rows
}

func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}

// BoardFromRows parses the Rows format. The turn is derived from the stone
// counts: Black to move when both sides have the same number of stones.
func BoardFromRows(rows []string) (*Board, error) {
	b, err := NewBoard(len(rows))
	if err != nil {
		return nil, err
	}
	var blacks, whites int
	for r, line := range rows {
		if len(line) != b.size {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(line), b.size, errs.ErrInvalidBoardSize)
		}
		for c := 0; c < b.size; c++ {
			cell, ok := CellFromSymbol(line[c])
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown symbol %q: %w", r, c, line[c], errs.ErrMalformedBoard)
			}
			switch cell {
			case Black:
				blacks++
			case White:
				whites++
			}
			b.Set(r, c, cell)
		}
	}
	if blacks > whites {
		b.turn = White
	}
	return b, nil
}

func (b *Board) index(row, col int) int {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("omok: cell (%d,%d) outside %dx%d board", row, col, b.size, b.size))
	}
	return row*b.size + col
}
