package omok

import (
	"math"
	"time"
)

// WinScore dominates any value EvaluateBoard can produce.
const WinScore = 100000

type SearchResult struct {
	Move    Move
	Found   bool
	Score   int
	Depth   int
	Nodes   int
	Cutoffs int
	Elapsed time.Duration
}

// Searcher is a depth-limited minimax with alpha-beta pruning. White
// maximizes, Black minimizes. It mutates the board it is given and restores
// every cell before returning, so a board must not be shared with another
// goroutine during a search.
type Searcher struct {
	eval       Evaluator
	candidates CandidateGenerator
}

// run holds the counters of one search so a Searcher can serve concurrent
// searches on distinct boards.
type run struct {
	*Searcher
	nodes   int
	cutoffs int
}

func NewSearcher(eval Evaluator, candidates CandidateGenerator) *Searcher {
	return &Searcher{eval: eval, candidates: candidates}
}

// DefaultSearcher uses the default weight, radius and candidate limit.
func DefaultSearcher() *Searcher {
	eval := NewEvaluator(DefaultBlockWeight)
	return NewSearcher(eval, NewCandidateGenerator(eval, DefaultCandidateRadius, DefaultCandidateLimit))
}

// SelectMove returns White's best move at the given depth, or false when the
// board has no empty cell left.
func (s *Searcher) SelectMove(b *Board, depth int) (Move, bool) {
	res := s.Search(b, depth)
	return res.Move, res.Found
}

// Search runs the root of the search for White. Among equally scored moves the
// first one in candidate order wins. Depth below 1 is treated as 1.
func (s *Searcher) Search(b *Board, depth int) SearchResult {
	if depth < 1 {
		depth = 1
	}
	start := time.Now()
	st := &run{Searcher: s}

	res := SearchResult{Depth: depth, Score: math.MinInt}
	alpha, beta := math.MinInt, math.MaxInt
	for _, m := range s.candidates.Generate(b, White) {
		b.Set(m.Row, m.Col, White)
		score := st.minimax(b, m, depth-1, false, alpha, beta)
		b.Set(m.Row, m.Col, Empty)

		if score > res.Score {
			res.Score = score
			res.Move = m
			res.Found = true
		}
		if score > alpha {
			alpha = score
		}
	}
	if !res.Found {
		res.Score = 0
	}
	res.Nodes = st.nodes
	res.Cutoffs = st.cutoffs
	res.Elapsed = time.Since(start)
	return res
}

// minimax scores the position reached by playing last. Only the stone just
// placed can have completed a five, so the terminal test is local to it.
func (s *run) minimax(b *Board, last Move, depth int, maximizing bool, alpha, beta int) int {
	s.nodes++
	if HasFiveInRow(b, last.Row, last.Col) {
		if last.Color == White {
			return WinScore
		}
		return -WinScore
	}
	if depth == 0 {
		return s.eval.EvaluateBoard(b)
	}

	color := Black
	if maximizing {
		color = White
	}
	moves := s.candidates.Generate(b, color)
	if len(moves) == 0 {
		// full board, draw
		return 0
	}

	if maximizing {
		best := math.MinInt
		for _, m := range moves {
			b.Set(m.Row, m.Col, White)
			score := s.minimax(b, m, depth-1, false, alpha, beta)
			b.Set(m.Row, m.Col, Empty)
			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				s.cutoffs++
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, m := range moves {
		b.Set(m.Row, m.Col, Black)
		score := s.minimax(b, m, depth-1, true, alpha, beta)
		b.Set(m.Row, m.Col, Empty)
		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			s.cutoffs++
			break
		}
	}
	return best
}
