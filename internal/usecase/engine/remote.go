package engine

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"omok/internal/domain/omok"
	errs "omok/internal/errors"
	engineRPC "omok/microservices/proto"
	"omok/microservices/usecase"
)

// RemoteEngine asks the engine microservice for White's move.
type RemoteEngine struct {
	client engineRPC.EngineClient
}

func NewRemoteEngine(conn grpc.ClientConnInterface) *RemoteEngine {
	return &RemoteEngine{client: engineRPC.NewEngineClient(conn)}
}

func (r *RemoteEngine) GenerateMove(ctx context.Context, board *omok.Board, depth int) (omok.SearchResult, error) {
	resp, err := r.client.GenerateMove(ctx, &engineRPC.GenerateMoveRequest{
		Size:   int32(board.Size()),
		Stones: usecase.ConvertBoardToRPCStones(board),
		Depth:  int32(depth),
	})
	if err != nil {
		if status.Code(err) == codes.InvalidArgument {
			return omok.SearchResult{}, fmt.Errorf("%s: %w", status.Convert(err).Message(), errs.ErrMalformedBoard)
		}
		return omok.SearchResult{}, fmt.Errorf("engine rpc: %w", err)
	}

	res := omok.SearchResult{
		Found:   resp.GetFound(),
		Score:   int(resp.GetScore()),
		Depth:   int(resp.GetDepth()),
		Nodes:   int(resp.GetNodes()),
		Cutoffs: int(resp.GetCutoffs()),
		Elapsed: time.Duration(resp.GetElapsedUs()) * time.Microsecond,
	}
	if resp.GetFound() {
		res.Move = omok.NewMove(int(resp.GetRow()), int(resp.GetCol()), omok.White)
	}
	return res, nil
}
