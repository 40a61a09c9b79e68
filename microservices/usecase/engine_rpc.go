package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"omok/internal/domain/omok"
	errs "omok/internal/errors"
	engineRPC "omok/microservices/proto"
)

// EngineUseCase serves move searches over gRPC. Requested depths above
// maxDepth are lowered to it.
type EngineUseCase struct {
	searcher *omok.Searcher
	maxDepth int
	log      *zap.SugaredLogger
	engineRPC.UnimplementedEngineServer
}

func NewEngineUseCase(searcher *omok.Searcher, maxDepth int, log *zap.SugaredLogger) *EngineUseCase {
	return &EngineUseCase{
		searcher: searcher,
		maxDepth: maxDepth,
		log:      log,
	}
}

func (e *EngineUseCase) GenerateMove(ctx context.Context, in *engineRPC.GenerateMoveRequest) (*engineRPC.GenerateMoveResponse, error) {
	board, err := ConvertRPCStonesToBoard(int(in.GetSize()), in.GetStones())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := ctx.Err(); err != nil {
		return nil, status.FromContextError(err).Err()
	}

	depth := int(in.GetDepth())
	if e.maxDepth > 0 && depth > e.maxDepth {
		depth = e.maxDepth
	}

	res := e.searcher.Search(board, depth)
	e.log.Infow("generate move",
		"size", in.GetSize(),
		"stones", len(in.GetStones()),
		"depth", res.Depth,
		"found", res.Found,
		"move", res.Move.String(),
		"score", res.Score,
		"nodes", res.Nodes,
		"elapsed", res.Elapsed,
	)

	return &engineRPC.GenerateMoveResponse{
		Found:     res.Found,
		Row:       int32(res.Move.Row),
		Col:       int32(res.Move.Col),
		Score:     int32(res.Score),
		Depth:     int32(res.Depth),
		Nodes:     int64(res.Nodes),
		Cutoffs:   int64(res.Cutoffs),
		ElapsedUs: res.Elapsed.Microseconds(),
	}, nil
}

// ConvertRPCStonesToBoard rebuilds a position with White to move.
func ConvertRPCStonesToBoard(size int, stones []*engineRPC.Stone) (*omok.Board, error) {
	board, err := omok.NewBoard(size)
	if err != nil {
		return nil, err
	}
	for i, s := range stones {
		color := omok.Cell(s.GetColor())
		if color != omok.Black && color != omok.White {
			return nil, fmt.Errorf("stone %d has color %d: %w", i, s.GetColor(), errs.ErrMalformedBoard)
		}
		if err := board.Apply(omok.NewMove(int(s.GetRow()), int(s.GetCol()), color)); err != nil {
			return nil, fmt.Errorf("stone %d: %w", i, err)
		}
	}
	board.SetTurn(omok.White)
	return board, nil
}

// ConvertBoardToRPCStones lists the stones of b in row-major order.
func ConvertBoardToRPCStones(b *omok.Board) []*engineRPC.Stone {
	stones := make([]*engineRPC.Stone, 0, b.StoneCount())
	for r := 0; r < b.Size(); r++ {
		for c := 0; c < b.Size(); c++ {
			if cell := b.Get(r, c); cell != omok.Empty {
				stones = append(stones, &engineRPC.Stone{Row: int32(r), Col: int32(c), Color: int32(cell)})
			}
		}
	}
	return stones
}
