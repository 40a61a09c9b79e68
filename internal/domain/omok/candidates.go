package omok

import "sort"

const (
	DefaultCandidateRadius = 2
	DefaultCandidateLimit  = 10
)

// CandidateGenerator narrows the search to empty cells near existing stones,
// best threat score first.
type CandidateGenerator struct {
	Evaluator Evaluator
	Radius    int
	Limit     int
}

func NewCandidateGenerator(eval Evaluator, radius, limit int) CandidateGenerator {
	if radius <= 0 {
		radius = DefaultCandidateRadius
	}
	if limit <= 0 {
		limit = DefaultCandidateLimit
	}
	return CandidateGenerator{Evaluator: eval, Radius: radius, Limit: limit}
}

type scoredCell struct {
	row, col int
	score    float64
}

// Generate returns at most Limit candidate moves for color, sorted by
// descending threat score. Cells are collected stone by stone in row-major
// stone order, each stone's neighbourhood scanned row offset first, and ties
// keep that first-seen order. On a board with no stones the only candidate is
// the center. A full board yields none.
func (g CandidateGenerator) Generate(b *Board, color Cell) []Move {
	if b.StoneCount() == 0 {
		r, c := b.Center()
		return []Move{NewMove(r, c, color)}
	}

	seen := make([]bool, len(b.cells))
	scored := make([]scoredCell, 0, 64)
	for sr := 0; sr < b.size; sr++ {
		for sc := 0; sc < b.size; sc++ {
			if b.Get(sr, sc) == Empty {
				continue
			}
			for dr := -g.Radius; dr <= g.Radius; dr++ {
				for dc := -g.Radius; dc <= g.Radius; dc++ {
					r, c := sr+dr, sc+dc
					if !b.InBounds(r, c) || b.Get(r, c) != Empty {
						continue
					}
					i := b.index(r, c)
					if seen[i] {
						continue
					}
					seen[i] = true
					scored = append(scored, scoredCell{row: r, col: c, score: g.Evaluator.ScoreCell(b, r, c)})
				}
			}
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > g.Limit {
		scored = scored[:g.Limit]
	}

	moves := make([]Move, len(scored))
	for i, s := range scored {
		moves[i] = NewMove(s.row, s.col, color)
	}
	return moves
}
