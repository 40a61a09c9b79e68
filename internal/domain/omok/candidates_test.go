package omok

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultGenerator() CandidateGenerator {
	return NewCandidateGenerator(NewEvaluator(DefaultBlockWeight), DefaultCandidateRadius, DefaultCandidateLimit)
}

func TestGenerateEmptyBoardProposesCenter(t *testing.T) {
	b := newTestBoard(t, 15)
	moves := defaultGenerator().Generate(b, White)
	require.NotEmpty(t, moves)
	assert.Equal(t, NewMove(7, 7, White), moves[0])
}

func TestGenerateStaysNearStones(t *testing.T) {
	b := newTestBoard(t, 15)
	b.Set(7, 7, Black)

	moves := defaultGenerator().Generate(b, White)
	require.Len(t, moves, DefaultCandidateLimit)

	seen := make(map[[2]int]bool)
	for _, m := range moves {
		assert.LessOrEqual(t, abs(m.Row-7), 2)
		assert.LessOrEqual(t, abs(m.Col-7), 2)
		assert.True(t, b.IsEmpty(m.Row, m.Col))
		assert.Equal(t, White, m.Color)
		key := [2]int{m.Row, m.Col}
		assert.False(t, seen[key], "duplicate %v", m)
		seen[key] = true
	}
}

func TestGenerateOrdersByThreat(t *testing.T) {
	b := newTestBoard(t, 15)
	for c := 3; c <= 6; c++ {
		b.Set(7, c, Black)
	}
	b.Set(7, 2, White)
	b.Set(3, 11, White)
	b.Set(11, 11, White)

	g := defaultGenerator()
	moves := g.Generate(b, White)
	require.NotEmpty(t, moves)
	assert.Equal(t, 7, moves[0].Row)
	assert.Equal(t, 7, moves[0].Col)

	for i := 1; i < len(moves); i++ {
		prev := g.Evaluator.ScoreCell(b, moves[i-1].Row, moves[i-1].Col)
		cur := g.Evaluator.ScoreCell(b, moves[i].Row, moves[i].Col)
		assert.GreaterOrEqual(t, prev, cur)
	}
}

func TestGenerateRespectsLimitAndRadius(t *testing.T) {
	b := newTestBoard(t, 15)
	b.Set(0, 0, Black)

	g := NewCandidateGenerator(NewEvaluator(DefaultBlockWeight), 1, 50)
	moves := g.Generate(b, Black)
	// (0,1), (1,0), (1,1)
	assert.Len(t, moves, 3)

	g = NewCandidateGenerator(NewEvaluator(DefaultBlockWeight), 2, 4)
	assert.Len(t, g.Generate(b, Black), 4)
}

func TestGenerateFullBoardHasNoCandidates(t *testing.T) {
	b := newTestBoard(t, 5)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			b.Set(r, c, Black)
		}
	}
	assert.Empty(t, defaultGenerator().Generate(b, White))
}

func TestGenerateIsRecomputedEachCall(t *testing.T) {
	b := newTestBoard(t, 15)
	b.Set(7, 7, Black)
	g := defaultGenerator()
	first := g.Generate(b, White)

	b.Set(first[0].Row, first[0].Col, White)
	second := g.Generate(b, White)
	for _, m := range second {
		assert.False(t, m.SamePoint(first[0]))
	}
}

func TestGenerateBreaksTiesInStoneOrder(t *testing.T) {
	b := newTestBoard(t, 15)
	b.Set(0, 5, Black)
	b.Set(2, 0, Black)

	g := NewCandidateGenerator(NewEvaluator(DefaultBlockWeight), DefaultCandidateRadius, 100)
	require.Equal(t, g.Evaluator.ScoreCell(b, 0, 3), g.Evaluator.ScoreCell(b, 0, 0))

	pos := make(map[[2]int]int)
	for i, m := range g.Generate(b, White) {
		pos[[2]int{m.Row, m.Col}] = i
	}
	require.Contains(t, pos, [2]int{0, 3})
	require.Contains(t, pos, [2]int{0, 0})
	// (0,3) is reached from the first stone, (0,0) only from the second
	assert.Less(t, pos[[2]int{0, 3}], pos[[2]int{0, 0}])
}
