package omok

// WinLength is the run length that ends the game. Longer runs also win.
const WinLength = 5

// directions are the four line axes: horizontal, vertical, diagonal-down and
// diagonal-up. Each is walked in both senses.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}

// HasFiveInRow reports whether the stone at (row, col) is part of a run of at
// least WinLength stones of its own color. An empty origin never wins.
func HasFiveInRow(b *Board, row, col int) bool {
	return len(WinningLine(b, row, col)) > 0
}

// WinningLine returns the cells of the first winning run through (row, col),
// ordered along the axis, or nil.
func WinningLine(b *Board, row, col int) []Move {
	color := b.Get(row, col)
	if color == Empty {
		return nil
	}
	for _, d := range directions {
		back := runLength(b, row, col, -d[0], -d[1], color)
		fwd := runLength(b, row, col, d[0], d[1], color)
		if back+fwd+1 < WinLength {
			continue
		}
		line := make([]Move, 0, back+fwd+1)
		for i := -back; i <= fwd; i++ {
			line = append(line, NewMove(row+i*d[0], col+i*d[1], color))
		}
		return line
	}
	return nil
}

// runLength counts contiguous cells of color starting one step away from the
// origin, stopping at the edge or the first mismatch.
func runLength(b *Board, row, col, dr, dc int, color Cell) int {
	n := 0
	r, c := row+dr, col+dc
	for b.InBounds(r, c) && b.Get(r, c) == color {
		n++
		r += dr
		c += dc
	}
	return n
}
