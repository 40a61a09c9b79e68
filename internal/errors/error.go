package errors

import "errors"

var (
	ErrOutOfBounds       = errors.New("position is outside the board")
	ErrCellOccupied      = errors.New("position is already occupied")
	ErrGameOver          = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it is not this side's turn")
	ErrGameNotFound      = errors.New("game not found")
	ErrInvalidDifficulty = errors.New("unknown difficulty")
	ErrInvalidBoardSize  = errors.New("invalid board size")
	ErrMalformedBoard    = errors.New("malformed board")
	ErrInternal          = errors.New("internal error")
)
