package game

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"omok/internal/bootstrap"
	"omok/internal/domain/game"
	"omok/internal/domain/omok"
	errs "omok/internal/errors"
)

type memoryStore struct {
	mu      sync.Mutex
	next    int
	records map[string]game.Record
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: map[string]game.Record{}}
}

func (m *memoryStore) GenerateGameKey(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return "game-" + string(rune('0'+m.next)), nil
}

func (m *memoryStore) SaveGame(_ context.Context, record game.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.GameKey] = record
	return nil
}

func (m *memoryStore) LoadGame(_ context.Context, key string) (game.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[key]
	if !ok {
		return game.Record{}, errs.ErrGameNotFound
	}
	return record, nil
}

func (m *memoryStore) DeleteGame(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[key]; !ok {
		return errs.ErrGameNotFound
	}
	delete(m.records, key)
	return nil
}

type recordedEvent struct {
	name    string
	payload map[string]any
}

type recorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *recorder) Emit(_ context.Context, event string, payload map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{name: event, payload: payload})
}

func (r *recorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.name)
	}
	return out
}

type fakeEngine struct {
	res   omok.SearchResult
	err   error
	calls int
	depth int
}

func (f *fakeEngine) GenerateMove(_ context.Context, _ *omok.Board, depth int) (omok.SearchResult, error) {
	f.calls++
	f.depth = depth
	return f.res, f.err
}

func testConfig() bootstrap.Config {
	return bootstrap.Config{BoardSize: 15, DepthEasy: 1, DepthMedium: 2, DepthHard: 3}
}

func newTestUseCase(t *testing.T, remote MoveGenerator) (*GameUseCase, *memoryStore, *recorder) {
	t.Helper()
	store := newMemoryStore()
	events := &recorder{}
	cfg := testConfig()
	uc := NewGameUseCase(store, omok.DefaultSearcher(), remote, NewDifficultyTable(cfg), cfg.BoardSize, events, zaptest.NewLogger(t).Sugar())
	uc.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return uc, store, events
}

// seedFourInRow stores a game where Black has four on row 7 and is to move.
func seedFourInRow(t *testing.T, store *memoryStore) string {
	t.Helper()
	moves := []omok.Move{
		omok.NewMove(7, 3, omok.Black), omok.NewMove(0, 0, omok.White),
		omok.NewMove(7, 4, omok.Black), omok.NewMove(0, 2, omok.White),
		omok.NewMove(7, 5, omok.Black), omok.NewMove(0, 4, omok.White),
		omok.NewMove(7, 6, omok.Black), omok.NewMove(0, 6, omok.White),
	}
	require.NoError(t, store.SaveGame(context.Background(), game.Record{
		GameKey:    "seeded",
		BoardSize:  15,
		Difficulty: DifficultyEasy,
		Depth:      1,
		Moves:      moves,
		Outcome:    omok.OutcomeContinue,
		CreatedAt:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}))
	return "seeded"
}

func TestDifficultyTable(t *testing.T) {
	table := NewDifficultyTable(testConfig())

	label, depth, err := table.Depth("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyEasy, label)
	assert.Equal(t, 1, depth)

	label, depth, err = table.Depth(" Hard ")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, label)
	assert.Equal(t, 3, depth)

	_, _, err = table.Depth("insane")
	assert.ErrorIs(t, err, errs.ErrInvalidDifficulty)
}

func TestCreateGame(t *testing.T) {
	uc, store, events := newTestUseCase(t, nil)
	ctx := context.Background()

	state, err := uc.CreateGame(ctx, DifficultyMedium)
	require.NoError(t, err)
	assert.NotEmpty(t, state.GameKey)
	assert.Equal(t, 15, state.BoardSize)
	assert.Equal(t, 2, state.Depth)
	assert.Equal(t, omok.Black, state.Turn)
	assert.Equal(t, omok.OutcomeContinue, state.Outcome)
	assert.Len(t, state.Rows, 15)
	assert.Empty(t, state.Moves)

	_, err = store.LoadGame(ctx, state.GameKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"game_started"}, events.names())

	_, err = uc.CreateGame(ctx, "impossible")
	assert.ErrorIs(t, err, errs.ErrInvalidDifficulty)
}

func TestHumanThenComputerMove(t *testing.T) {
	uc, _, events := newTestUseCase(t, nil)
	ctx := context.Background()

	state, err := uc.CreateGame(ctx, "")
	require.NoError(t, err)

	human, err := uc.PlayHumanMove(ctx, state.GameKey, 7, 7)
	require.NoError(t, err)
	assert.Equal(t, omok.NewMove(7, 7, omok.Black), human.Move)
	assert.Equal(t, omok.OutcomeContinue, human.Outcome)

	_, err = uc.PlayHumanMove(ctx, state.GameKey, 8, 8)
	assert.ErrorIs(t, err, errs.ErrNotYourTurn)

	computer, err := uc.PlayComputerMove(ctx, state.GameKey)
	require.NoError(t, err)
	require.NotNil(t, computer.Move)
	assert.Equal(t, omok.White, computer.Move.Color)
	assert.LessOrEqual(t, abs(computer.Move.Row-7), 2)
	assert.LessOrEqual(t, abs(computer.Move.Col-7), 2)
	assert.Positive(t, computer.Nodes)

	state, err = uc.GetGame(ctx, state.GameKey)
	require.NoError(t, err)
	assert.Len(t, state.Moves, 2)
	assert.Equal(t, omok.Black, state.Turn)
	assert.Contains(t, events.names(), "computer_move")
}

func TestPlayHumanMoveRejectsBadCells(t *testing.T) {
	uc, _, _ := newTestUseCase(t, nil)
	ctx := context.Background()
	state, err := uc.CreateGame(ctx, "")
	require.NoError(t, err)

	_, err = uc.PlayHumanMove(ctx, state.GameKey, 15, 0)
	assert.ErrorIs(t, err, errs.ErrOutOfBounds)

	_, err = uc.PlayTurn(ctx, state.GameKey, 7, 7)
	require.NoError(t, err)
	_, err = uc.PlayTurn(ctx, state.GameKey, 7, 7)
	assert.ErrorIs(t, err, errs.ErrCellOccupied)

	_, err = uc.PlayHumanMove(ctx, "missing", 0, 0)
	assert.ErrorIs(t, err, errs.ErrGameNotFound)
}

func TestPlayTurnAnswersMove(t *testing.T) {
	uc, store, _ := newTestUseCase(t, nil)
	ctx := context.Background()
	state, err := uc.CreateGame(ctx, "")
	require.NoError(t, err)

	turn, err := uc.PlayTurn(ctx, state.GameKey, 7, 7)
	require.NoError(t, err)
	require.NotNil(t, turn.HumanMove)
	require.NotNil(t, turn.ComputerMove)
	assert.Equal(t, omok.OutcomeContinue, turn.Outcome)
	assert.Len(t, turn.Rows, 15)
	assert.Equal(t, byte('O'), turn.Rows[turn.ComputerMove.Row][turn.ComputerMove.Col])

	record, err := store.LoadGame(ctx, state.GameKey)
	require.NoError(t, err)
	assert.Len(t, record.Moves, 2)
}

func TestPlayTurnHumanWinSkipsComputer(t *testing.T) {
	remote := &fakeEngine{}
	uc, store, events := newTestUseCase(t, remote)
	ctx := context.Background()
	key := seedFourInRow(t, store)

	turn, err := uc.PlayTurn(ctx, key, 7, 7)
	require.NoError(t, err)
	assert.Equal(t, omok.OutcomeBlackWins, turn.Outcome)
	assert.Nil(t, turn.ComputerMove)
	assert.Zero(t, remote.calls)
	assert.Equal(t, []string{"game_finished"}, events.names())

	state, err := uc.GetGame(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, omok.OutcomeBlackWins, state.Outcome)
	assert.Len(t, state.WinningLine, 5)

	_, err = uc.PlayHumanMove(ctx, key, 10, 10)
	assert.ErrorIs(t, err, errs.ErrGameOver)
}

func TestRemoteEngineMove(t *testing.T) {
	remote := &fakeEngine{res: omok.SearchResult{Move: omok.NewMove(6, 6, omok.White), Found: true, Depth: 2, Nodes: 42}}
	uc, _, _ := newTestUseCase(t, remote)
	ctx := context.Background()
	state, err := uc.CreateGame(ctx, DifficultyMedium)
	require.NoError(t, err)

	_, err = uc.PlayHumanMove(ctx, state.GameKey, 7, 7)
	require.NoError(t, err)
	resp, err := uc.PlayComputerMove(ctx, state.GameKey)
	require.NoError(t, err)
	require.NotNil(t, resp.Move)
	assert.Equal(t, omok.NewMove(6, 6, omok.White), *resp.Move)
	assert.Equal(t, 42, resp.Nodes)
	assert.Equal(t, 2, remote.depth)

	state, err = uc.GetGame(ctx, state.GameKey)
	require.NoError(t, err)
	assert.Equal(t, "O", string(state.Rows[6][6]))
}

func TestRemoteEngineWithoutMoveDraws(t *testing.T) {
	remote := &fakeEngine{res: omok.SearchResult{Found: false}}
	uc, _, events := newTestUseCase(t, remote)
	ctx := context.Background()
	state, err := uc.CreateGame(ctx, "")
	require.NoError(t, err)

	_, err = uc.PlayHumanMove(ctx, state.GameKey, 0, 0)
	require.NoError(t, err)
	resp, err := uc.PlayComputerMove(ctx, state.GameKey)
	require.NoError(t, err)
	assert.Nil(t, resp.Move)
	assert.Equal(t, omok.OutcomeDraw, resp.Outcome)

	state, err = uc.GetGame(ctx, state.GameKey)
	require.NoError(t, err)
	assert.Equal(t, omok.OutcomeDraw, state.Outcome)
	assert.Contains(t, events.names(), "game_finished")
}

func TestRemoteEngineError(t *testing.T) {
	boom := errors.New("engine unavailable")
	uc, store, _ := newTestUseCase(t, &fakeEngine{err: boom})
	ctx := context.Background()
	state, err := uc.CreateGame(ctx, "")
	require.NoError(t, err)

	_, err = uc.PlayTurn(ctx, state.GameKey, 7, 7)
	assert.ErrorIs(t, err, boom)

	record, err := store.LoadGame(ctx, state.GameKey)
	require.NoError(t, err)
	assert.Empty(t, record.Moves)
}

func TestExportSGF(t *testing.T) {
	uc, store, _ := newTestUseCase(t, nil)
	ctx := context.Background()
	key := seedFourInRow(t, store)

	_, err := uc.PlayHumanMove(ctx, key, 7, 7)
	require.NoError(t, err)

	out, err := uc.ExportSGF(ctx, key)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "(;FF[4]GM[4]CA[UTF-8]SZ[15]PB[human]PW[computer]DT[2025-03-01]RE[B+]"), out)
	assert.Contains(t, out, ";B[dh];W[aa];B[eh]")
	assert.True(t, strings.HasSuffix(out, ";B[hh])"), out)
}

func TestAbandonGame(t *testing.T) {
	uc, _, _ := newTestUseCase(t, nil)
	ctx := context.Background()
	state, err := uc.CreateGame(ctx, "")
	require.NoError(t, err)

	require.NoError(t, uc.AbandonGame(ctx, state.GameKey))
	_, err = uc.GetGame(ctx, state.GameKey)
	assert.ErrorIs(t, err, errs.ErrGameNotFound)
	assert.ErrorIs(t, uc.AbandonGame(ctx, state.GameKey), errs.ErrGameNotFound)
}

// abandonOnLoadStore starts an AbandonGame on the first LoadGame, while the
// loading call still holds the game, and gives it time to land.
type abandonOnLoadStore struct {
	*memoryStore
	uc   *GameUseCase
	once sync.Once
	done chan error
}

func (s *abandonOnLoadStore) LoadGame(ctx context.Context, key string) (game.Record, error) {
	record, err := s.memoryStore.LoadGame(ctx, key)
	s.once.Do(func() {
		go func() { s.done <- s.uc.AbandonGame(context.Background(), key) }()
		time.Sleep(50 * time.Millisecond)
	})
	return record, err
}

func TestAbandonWaitsForMoveInFlight(t *testing.T) {
	uc, store, _ := newTestUseCase(t, nil)
	ctx := context.Background()
	state, err := uc.CreateGame(ctx, "")
	require.NoError(t, err)

	wrapped := &abandonOnLoadStore{memoryStore: store, uc: uc, done: make(chan error, 1)}
	uc.store = wrapped

	_, err = uc.PlayHumanMove(ctx, state.GameKey, 7, 7)
	require.NoError(t, err)
	require.NoError(t, <-wrapped.done)

	_, err = uc.GetGame(ctx, state.GameKey)
	assert.ErrorIs(t, err, errs.ErrGameNotFound)
}

func TestGameLocksAreReleased(t *testing.T) {
	uc, store, _ := newTestUseCase(t, nil)
	ctx := context.Background()
	state, err := uc.CreateGame(ctx, "")
	require.NoError(t, err)
	key := seedFourInRow(t, store)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			_, _ = uc.PlayTurn(ctx, state.GameKey, row, 0)
		}(i + 5)
	}
	wg.Wait()
	_, err = uc.PlayHumanMove(ctx, key, 7, 7)
	require.NoError(t, err)
	require.NoError(t, uc.AbandonGame(ctx, state.GameKey))

	uc.locksMu.Lock()
	defer uc.locksMu.Unlock()
	assert.Empty(t, uc.locks)
}

// lockCheckingPublisher records whether the game was still locked when each
// event arrived.
type lockCheckingPublisher struct {
	recorder
	uc     *GameUseCase
	locked []bool
}

func (p *lockCheckingPublisher) Emit(ctx context.Context, event string, payload map[string]any) {
	key, _ := payload["game_key"].(string)
	p.uc.locksMu.Lock()
	_, held := p.uc.locks[key]
	p.uc.locksMu.Unlock()

	p.mu.Lock()
	p.locked = append(p.locked, held)
	p.mu.Unlock()
	p.recorder.Emit(ctx, event, payload)
}

func TestEventsPublishedAfterUnlock(t *testing.T) {
	uc, store, _ := newTestUseCase(t, nil)
	pub := &lockCheckingPublisher{uc: uc}
	uc.events = pub
	ctx := context.Background()
	key := seedFourInRow(t, store)

	state, err := uc.CreateGame(ctx, "")
	require.NoError(t, err)
	_, err = uc.PlayTurn(ctx, state.GameKey, 7, 7)
	require.NoError(t, err)
	_, err = uc.PlayHumanMove(ctx, key, 7, 7)
	require.NoError(t, err)

	assert.Equal(t, []string{"game_started", "computer_move", "game_finished"}, pub.names())
	assert.Equal(t, []bool{false, false, false}, pub.locked)
}

func TestFailedMovePublishesNothing(t *testing.T) {
	uc, _, events := newTestUseCase(t, &fakeEngine{err: errors.New("engine unavailable")})
	ctx := context.Background()
	state, err := uc.CreateGame(ctx, "")
	require.NoError(t, err)

	_, err = uc.PlayTurn(ctx, state.GameKey, 7, 7)
	require.Error(t, err)
	assert.Equal(t, []string{"game_started"}, events.names())
}

func TestSuggestMoveCapsDepth(t *testing.T) {
	uc, _, _ := newTestUseCase(t, nil)
	rows := []string{
		".....",
		".....",
		"..X..",
		".....",
		".....",
	}
	resp, err := uc.SuggestMove(context.Background(), rows, 20)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Depth)

	resp, err = uc.SuggestMove(context.Background(), rows, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Depth)

	remote := &fakeEngine{res: omok.SearchResult{Found: true, Move: omok.NewMove(2, 3, omok.White), Depth: 3}}
	uc, _, _ = newTestUseCase(t, remote)
	_, err = uc.SuggestMove(context.Background(), rows, 99)
	require.NoError(t, err)
	assert.Equal(t, 3, remote.depth)
}

func TestSuggestMove(t *testing.T) {
	uc, _, _ := newTestUseCase(t, nil)
	rows := []string{
		".........",
		".........",
		"X........",
		".........",
		"OOOO.X...",
		"X........",
		".........",
		"....X....",
		".........",
	}
	resp, err := uc.SuggestMove(context.Background(), rows, 2)
	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.Equal(t, 4, resp.Row)
	assert.Equal(t, 4, resp.Col)
	assert.Equal(t, omok.WinScore, resp.Score)

	_, err = uc.SuggestMove(context.Background(), []string{"...", "..."}, 2)
	assert.Error(t, err)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
