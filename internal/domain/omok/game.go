package omok

import (
	"fmt"

	errs "omok/internal/errors"
)

type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeBlackWins
	OutcomeWhiteWins
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBlackWins:
		return "black_wins"
	case OutcomeWhiteWins:
		return "white_wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "continue"
	}
}

func (o Outcome) Finished() bool {
	return o != OutcomeContinue
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	parsed, ok := ParseOutcome(string(text))
	if !ok {
		return fmt.Errorf("unknown outcome %q", text)
	}
	*o = parsed
	return nil
}

func ParseOutcome(s string) (Outcome, bool) {
	for _, o := range []Outcome{OutcomeContinue, OutcomeBlackWins, OutcomeWhiteWins, OutcomeDraw} {
		if o.String() == s {
			return o, true
		}
	}
	return OutcomeContinue, false
}

// Game is one human (Black) versus computer (White) session. It owns its
// board exclusively; the searcher only borrows it for the duration of a move.
type Game struct {
	board    *Board
	searcher *Searcher
	moves    []Move
	outcome  Outcome
	winning  []Move
	last     SearchResult
}

func NewGame(size int, searcher *Searcher) (*Game, error) {
	b, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	if searcher == nil {
		searcher = DefaultSearcher()
	}
	return &Game{board: b, searcher: searcher}, nil
}

// ReplayGame rebuilds a game by re-applying a recorded move list in order.
func ReplayGame(size int, moves []Move, searcher *Searcher) (*Game, error) {
	g, err := NewGame(size, searcher)
	if err != nil {
		return nil, err
	}
	for i, m := range moves {
		if _, err := g.play(m); err != nil {
			return nil, fmt.Errorf("replay move %d: %w", i, err)
		}
	}
	return g, nil
}

// ApplyHumanMove places a Black stone at (row, col).
func (g *Game) ApplyHumanMove(row, col int) (Outcome, error) {
	return g.play(NewMove(row, col, Black))
}

// ComputeComputerMove searches at depth and plays White's answer. When the
// board has no empty cell the game ends in a draw and no move is returned.
func (g *Game) ComputeComputerMove(depth int) (Move, Outcome, error) {
	if err := g.checkTurn(White); err != nil {
		return Move{}, g.outcome, err
	}
	res := g.searcher.Search(g.board, depth)
	g.last = res
	if !res.Found {
		g.outcome = OutcomeDraw
		return Move{}, g.outcome, nil
	}
	outcome, err := g.play(res.Move)
	return res.Move, outcome, err
}

// ApplyComputerMove plays a White move chosen outside this process.
func (g *Game) ApplyComputerMove(m Move) (Outcome, error) {
	m.Color = White
	return g.play(m)
}

// EndInDraw records a draw when no White move exists.
func (g *Game) EndInDraw() error {
	if err := g.checkTurn(White); err != nil {
		return err
	}
	g.outcome = OutcomeDraw
	return nil
}

func (g *Game) play(m Move) (Outcome, error) {
	if err := g.checkTurn(m.Color); err != nil {
		return g.outcome, err
	}
	if err := g.board.Apply(m); err != nil {
		return g.outcome, err
	}
	g.moves = append(g.moves, m)

	switch {
	case HasFiveInRow(g.board, m.Row, m.Col):
		g.winning = WinningLine(g.board, m.Row, m.Col)
		if m.Color == Black {
			g.outcome = OutcomeBlackWins
		} else {
			g.outcome = OutcomeWhiteWins
		}
	case g.board.IsFull():
		g.outcome = OutcomeDraw
	}
	return g.outcome, nil
}

func (g *Game) checkTurn(color Cell) error {
	if g.outcome.Finished() {
		return errs.ErrGameOver
	}
	if g.board.Turn() != color {
		return fmt.Errorf("%s to move: %w", g.board.Turn(), errs.ErrNotYourTurn)
	}
	return nil
}

// Board returns a copy; the live board is never handed out.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

func (g *Game) Moves() []Move {
	return append([]Move(nil), g.moves...)
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

func (g *Game) Turn() Cell {
	return g.board.Turn()
}

func (g *Game) WinningLine() []Move {
	return append([]Move(nil), g.winning...)
}

// LastSearch describes the most recent ComputeComputerMove search.
func (g *Game) LastSearch() SearchResult {
	return g.last
}
