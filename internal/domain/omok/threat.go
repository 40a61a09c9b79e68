package omok

const (
	// DefaultBlockWeight biases candidate ranking towards blocking Black.
	DefaultBlockWeight = 1.2

	threatWindow = 4

	stoneBase     = 10
	centralityCap = 5
)

// Evaluator scores cells for move ordering and boards for search leaves.
// Scores are from White's point of view.
type Evaluator struct {
	BlockWeight float64
}

func NewEvaluator(blockWeight float64) Evaluator {
	if blockWeight <= 0 {
		blockWeight = DefaultBlockWeight
	}
	return Evaluator{BlockWeight: blockWeight}
}

// ScoreCell rates an empty cell by how many stones of each color sit within
// threatWindow cells of it along every axis. Counts are squared so longer
// groups dominate; Black counts are multiplied by BlockWeight.
func (e Evaluator) ScoreCell(b *Board, row, col int) float64 {
	var score float64
	for _, d := range directions {
		var blacks, whites int
		for off := -threatWindow; off <= threatWindow; off++ {
			r, c := row+off*d[0], col+off*d[1]
			if !b.InBounds(r, c) {
				continue
			}
			switch b.Get(r, c) {
			case Black:
				blacks++
			case White:
				whites++
			}
		}
		score += float64(blacks*blacks) * e.BlockWeight
		score += float64(whites * whites)
	}
	return score
}

// EvaluateBoard is the static leaf value: every stone is worth stoneBase plus
// a bonus that falls off with Manhattan distance from the center, positive
// for White and negative for Black.
func (e Evaluator) EvaluateBoard(b *Board) int {
	cr, cc := b.Center()
	score := 0
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			cell := b.Get(r, c)
			if cell == Empty {
				continue
			}
			v := stoneBase + centralityCap - (abs(cr-r) + abs(cc-c))
			if cell == White {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
