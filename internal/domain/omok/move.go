package omok

import "fmt"

type Move struct {
	Row   int  `json:"row"`
	Col   int  `json:"col"`
	Color Cell `json:"color"`
}

func NewMove(row, col int, color Cell) Move {
	return Move{Row: row, Col: col, Color: color}
}

func (m Move) SamePoint(other Move) bool {
	return m.Row == other.Row && m.Col == other.Col
}

func (m Move) String() string {
	return fmt.Sprintf("%s(%d,%d)", m.Color, m.Row, m.Col)
}
