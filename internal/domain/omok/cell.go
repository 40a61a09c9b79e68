package omok

import "fmt"

type Cell int8

const (
	Empty Cell = iota
	Black
	White
)

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Symbol is the single-character form used in board dumps and API rows.
func (c Cell) Symbol() byte {
	switch c {
	case Black:
		return 'X'
	case White:
		return 'O'
	default:
		return '.'
	}
}

func CellFromSymbol(b byte) (Cell, bool) {
	switch b {
	case 'X', 'x', 'B', 'b':
		return Black, true
	case 'O', 'o', 'W', 'w':
		return White, true
	case '.', '-', '+':
		return Empty, true
	default:
		return Empty, false
	}
}

func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Cell) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case "black", "B", "b":
		*c = Black
	case "white", "W", "w":
		*c = White
	case "empty", "":
		*c = Empty
	default:
		return fmt.Errorf("unknown cell %q", text)
	}
	return nil
}
