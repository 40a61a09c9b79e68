package game

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"omok/internal/domain/game"
	"omok/internal/domain/omok"
	"omok/internal/domain/sgf"
)

type GameStore interface {
	GenerateGameKey(ctx context.Context) (string, error)
	SaveGame(ctx context.Context, record game.Record) error
	LoadGame(ctx context.Context, gameKey string) (game.Record, error)
	DeleteGame(ctx context.Context, gameKey string) error
}

// MoveGenerator searches a position outside the game session, e.g. on the
// engine microservice. The board passed in is a copy.
type MoveGenerator interface {
	GenerateMove(ctx context.Context, board *omok.Board, depth int) (omok.SearchResult, error)
}

type EventPublisher interface {
	Emit(ctx context.Context, event string, payload map[string]any)
}

type GameUseCase struct {
	store     GameStore
	searcher  *omok.Searcher
	remote    MoveGenerator
	depths    DifficultyTable
	boardSize int
	events    EventPublisher
	log       *zap.SugaredLogger
	now       func() time.Time

	locksMu sync.Mutex
	locks   map[string]*gameLock
}

// gameLock serializes the calls on one game. refs counts holders and
// waiters; the entry is dropped when it reaches zero.
type gameLock struct {
	mu   sync.Mutex
	refs int
}

type pendingEvent struct {
	name    string
	payload map[string]any
}

// eventBatch collects events raised while a game is locked. They are
// published once the lock is released and the call has succeeded.
type eventBatch []pendingEvent

func (b *eventBatch) add(name string, payload map[string]any) {
	*b = append(*b, pendingEvent{name: name, payload: payload})
}

// NewGameUseCase wires the use case. remote may be nil, in which case the
// computer's moves are searched in-process with searcher.
func NewGameUseCase(
	store GameStore,
	searcher *omok.Searcher,
	remote MoveGenerator,
	depths DifficultyTable,
	boardSize int,
	events EventPublisher,
	log *zap.SugaredLogger,
) *GameUseCase {
	return &GameUseCase{
		store:     store,
		searcher:  searcher,
		remote:    remote,
		depths:    depths,
		boardSize: boardSize,
		events:    events,
		log:       log,
		now:       time.Now,
		locks:     make(map[string]*gameLock),
	}
}

func (g *GameUseCase) CreateGame(ctx context.Context, difficulty string) (game.GameStateResponse, error) {
	label, depth, err := g.depths.Depth(difficulty)
	if err != nil {
		return game.GameStateResponse{}, err
	}
	play, err := omok.NewGame(g.boardSize, g.searcher)
	if err != nil {
		return game.GameStateResponse{}, err
	}
	key, err := g.store.GenerateGameKey(ctx)
	if err != nil {
		return game.GameStateResponse{}, err
	}

	now := g.now().UTC()
	record := game.Record{
		GameKey:    key,
		BoardSize:  g.boardSize,
		Difficulty: label,
		Depth:      depth,
		Moves:      []omok.Move{},
		Outcome:    omok.OutcomeContinue,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := g.store.SaveGame(ctx, record); err != nil {
		return game.GameStateResponse{}, err
	}

	g.log.Infof("game %s created: difficulty=%s depth=%d size=%d", key, label, depth, g.boardSize)
	g.events.Emit(ctx, "game_started", map[string]any{
		"game_key":   key,
		"difficulty": label,
		"depth":      depth,
		"board_size": g.boardSize,
	})
	return stateResponse(record, play), nil
}

func (g *GameUseCase) GetGame(ctx context.Context, gameKey string) (game.GameStateResponse, error) {
	record, play, err := g.load(ctx, gameKey)
	if err != nil {
		return game.GameStateResponse{}, err
	}
	return stateResponse(record, play), nil
}

// PlayHumanMove applies Black's move. The computer does not answer here.
func (g *GameUseCase) PlayHumanMove(ctx context.Context, gameKey string, row, col int) (_ game.HumanMoveResponse, err error) {
	var events eventBatch
	defer g.publish(ctx, &events, &err)
	unlock := g.lock(gameKey)
	defer unlock()

	record, play, err := g.load(ctx, gameKey)
	if err != nil {
		return game.HumanMoveResponse{}, err
	}
	outcome, err := play.ApplyHumanMove(row, col)
	if err != nil {
		return game.HumanMoveResponse{}, err
	}
	if err := g.save(ctx, record, play, &events); err != nil {
		return game.HumanMoveResponse{}, err
	}
	return game.HumanMoveResponse{Move: omok.NewMove(row, col, omok.Black), Outcome: outcome}, nil
}

// PlayComputerMove searches at the game's depth and applies White's move.
func (g *GameUseCase) PlayComputerMove(ctx context.Context, gameKey string) (_ game.ComputerMoveResponse, err error) {
	var events eventBatch
	defer g.publish(ctx, &events, &err)
	unlock := g.lock(gameKey)
	defer unlock()

	record, play, err := g.load(ctx, gameKey)
	if err != nil {
		return game.ComputerMoveResponse{}, err
	}
	res, outcome, err := g.computerMove(ctx, record, play, &events)
	if err != nil {
		return game.ComputerMoveResponse{}, err
	}
	if err := g.save(ctx, record, play, &events); err != nil {
		return game.ComputerMoveResponse{}, err
	}
	return computerResponse(res, outcome), nil
}

// PlayTurn applies Black's move and, unless that ended the game, answers
// with White's move in the same call.
func (g *GameUseCase) PlayTurn(ctx context.Context, gameKey string, row, col int) (_ game.TurnResponse, err error) {
	var events eventBatch
	defer g.publish(ctx, &events, &err)
	unlock := g.lock(gameKey)
	defer unlock()

	record, play, err := g.load(ctx, gameKey)
	if err != nil {
		return game.TurnResponse{}, err
	}
	outcome, err := play.ApplyHumanMove(row, col)
	if err != nil {
		return game.TurnResponse{}, err
	}
	human := omok.NewMove(row, col, omok.Black)
	resp := game.TurnResponse{HumanMove: &human, Outcome: outcome}

	if !outcome.Finished() {
		res, computerOutcome, err := g.computerMove(ctx, record, play, &events)
		if err != nil {
			return game.TurnResponse{}, err
		}
		if res.Found {
			m := res.Move
			resp.ComputerMove = &m
		}
		resp.Outcome = computerOutcome
	}
	if err := g.save(ctx, record, play, &events); err != nil {
		return game.TurnResponse{}, err
	}
	resp.Rows = play.Board().Rows()
	return resp, nil
}

// AbandonGame waits for any move in flight on the game before deleting it.
func (g *GameUseCase) AbandonGame(ctx context.Context, gameKey string) error {
	unlock := g.lock(gameKey)
	defer unlock()

	if err := g.store.DeleteGame(ctx, gameKey); err != nil {
		return err
	}
	g.log.Infof("game %s abandoned", gameKey)
	return nil
}

func (g *GameUseCase) ExportSGF(ctx context.Context, gameKey string) (string, error) {
	record, _, err := g.load(ctx, gameKey)
	if err != nil {
		return "", err
	}
	s := PrepareSgfFile(record)
	AddMovesToSgf(s.Root, record.Moves)
	return sgf.Serialize(&s), nil
}

// SuggestMove answers a stateless position query. The turn is ignored; the
// move is always White's. Depth defaults to the easy depth and is capped at
// the hard one.
func (g *GameUseCase) SuggestMove(ctx context.Context, rows []string, depth int) (game.EngineMoveResponse, error) {
	board, err := omok.BoardFromRows(rows)
	if err != nil {
		return game.EngineMoveResponse{}, err
	}
	if depth < 1 {
		_, depth, _ = g.depths.Depth(DifficultyEasy)
	}
	if _, hard, _ := g.depths.Depth(DifficultyHard); depth > hard {
		depth = hard
	}
	res, err := g.search(ctx, board, depth)
	if err != nil {
		return game.EngineMoveResponse{}, err
	}
	return game.EngineMoveResponse{
		Found: res.Found,
		Row:   res.Move.Row,
		Col:   res.Move.Col,
		Score: res.Score,
		Depth: res.Depth,
		Nodes: res.Nodes,
	}, nil
}

func (g *GameUseCase) computerMove(ctx context.Context, record game.Record, play *omok.Game, events *eventBatch) (omok.SearchResult, omok.Outcome, error) {
	var (
		res     omok.SearchResult
		outcome omok.Outcome
		err     error
	)
	if g.remote == nil {
		_, outcome, err = play.ComputeComputerMove(record.Depth)
		res = play.LastSearch()
	} else {
		res, err = g.remote.GenerateMove(ctx, play.Board(), record.Depth)
		if err != nil {
			return res, play.Outcome(), fmt.Errorf("generate move for %s: %w", record.GameKey, err)
		}
		if res.Found {
			outcome, err = play.ApplyComputerMove(res.Move)
		} else {
			err = play.EndInDraw()
			outcome = play.Outcome()
		}
	}
	if err != nil {
		return res, outcome, err
	}

	g.log.Infow("computer move",
		"game_key", record.GameKey,
		"move", res.Move.String(),
		"found", res.Found,
		"score", res.Score,
		"depth", res.Depth,
		"nodes", res.Nodes,
		"cutoffs", res.Cutoffs,
		"elapsed", res.Elapsed,
	)
	events.add("computer_move", map[string]any{
		"game_key":   record.GameKey,
		"row":        res.Move.Row,
		"col":        res.Move.Col,
		"found":      res.Found,
		"score":      res.Score,
		"depth":      res.Depth,
		"nodes":      res.Nodes,
		"elapsed_ms": res.Elapsed.Milliseconds(),
	})
	return res, outcome, nil
}

func (g *GameUseCase) search(ctx context.Context, board *omok.Board, depth int) (omok.SearchResult, error) {
	if g.remote != nil {
		return g.remote.GenerateMove(ctx, board, depth)
	}
	return g.searcher.Search(board, depth), nil
}

func (g *GameUseCase) load(ctx context.Context, gameKey string) (game.Record, *omok.Game, error) {
	record, err := g.store.LoadGame(ctx, gameKey)
	if err != nil {
		return game.Record{}, nil, err
	}
	play, err := omok.ReplayGame(record.BoardSize, record.Moves, g.searcher)
	if err != nil {
		return game.Record{}, nil, fmt.Errorf("restore game %s: %w", gameKey, err)
	}
	if record.Outcome == omok.OutcomeDraw && !play.Outcome().Finished() {
		// drawn because no White move existed
		_ = play.EndInDraw()
	}
	return record, play, nil
}

func (g *GameUseCase) save(ctx context.Context, record game.Record, play *omok.Game, events *eventBatch) error {
	wasFinished := record.Outcome.Finished()
	record.Moves = play.Moves()
	record.Outcome = play.Outcome()
	record.UpdatedAt = g.now().UTC()
	if err := g.store.SaveGame(ctx, record); err != nil {
		return err
	}
	if !wasFinished && record.Outcome.Finished() {
		g.log.Infof("game %s finished: %s after %d moves", record.GameKey, record.Outcome, len(record.Moves))
		events.add("game_finished", map[string]any{
			"game_key": record.GameKey,
			"outcome":  record.Outcome.String(),
			"moves":    len(record.Moves),
		})
	}
	return nil
}

func (g *GameUseCase) lock(gameKey string) func() {
	g.locksMu.Lock()
	l, ok := g.locks[gameKey]
	if !ok {
		l = &gameLock{}
		g.locks[gameKey] = l
	}
	l.refs++
	g.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		g.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(g.locks, gameKey)
		}
		g.locksMu.Unlock()
	}
}

func (g *GameUseCase) publish(ctx context.Context, events *eventBatch, err *error) {
	if *err != nil {
		return
	}
	for _, e := range *events {
		g.events.Emit(ctx, e.name, e.payload)
	}
}

func stateResponse(record game.Record, play *omok.Game) game.GameStateResponse {
	board := play.Board()
	return game.GameStateResponse{
		GameKey:     record.GameKey,
		BoardSize:   board.Size(),
		Difficulty:  record.Difficulty,
		Depth:       record.Depth,
		Turn:        board.Turn(),
		Outcome:     play.Outcome(),
		Rows:        board.Rows(),
		Moves:       play.Moves(),
		WinningLine: play.WinningLine(),
	}
}

func computerResponse(res omok.SearchResult, outcome omok.Outcome) game.ComputerMoveResponse {
	resp := game.ComputerMoveResponse{
		Outcome:   outcome,
		Score:     res.Score,
		Nodes:     res.Nodes,
		ElapsedMs: res.Elapsed.Milliseconds(),
	}
	if res.Found {
		m := res.Move
		resp.Move = &m
	}
	return resp
}

func PrepareSgfFile(record game.Record) sgf.SGF {
	return sgf.SGF{
		Root: &sgf.GameTree{
			Nodes: []sgf.Node{
				{
					Properties: map[string][]string{
						"FF": {"4"},
						"GM": {"4"},
						"CA": {"UTF-8"},
						"SZ": {strconv.Itoa(record.BoardSize)},
						"PB": {"human"},
						"PW": {"computer"},
						"DT": {record.CreatedAt.Format("2006-01-02")},
						"RE": {sgfResult(record.Outcome)},
						"C":  {fmt.Sprintf("difficulty %s, depth %d", record.Difficulty, record.Depth)},
					},
				},
			},
		},
	}
}

func AddMovesToSgf(tree *sgf.GameTree, moves []omok.Move) {
	for _, move := range moves {
		color := "B"
		if move.Color == omok.White {
			color = "W"
		}
		tree.Nodes = append(tree.Nodes, sgf.Node{
			Properties: map[string][]string{
				color: {sgf.Point(move.Row, move.Col)},
			},
		})
	}
}

func sgfResult(o omok.Outcome) string {
	switch o {
	case omok.OutcomeBlackWins:
		return "B+"
	case omok.OutcomeWhiteWins:
		return "W+"
	case omok.OutcomeDraw:
		return "0"
	default:
		return "?"
	}
}
