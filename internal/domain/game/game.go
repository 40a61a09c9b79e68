package game

import (
	"time"

	"omok/internal/domain/omok"
)

// Record is the stored form of an in-progress game. The board is not stored;
// it is rebuilt by replaying Moves.
type Record struct {
	GameKey    string       `json:"game_key"`
	BoardSize  int          `json:"board_size"`
	Difficulty string       `json:"difficulty"`
	Depth      int          `json:"depth"`
	Moves      []omok.Move  `json:"moves"`
	Outcome    omok.Outcome `json:"outcome"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

type CreateGameRequest struct {
	Difficulty string `json:"difficulty"`
}

type GameStateResponse struct {
	GameKey     string       `json:"game_key"`
	BoardSize   int          `json:"board_size"`
	Difficulty  string       `json:"difficulty"`
	Depth       int          `json:"depth"`
	Turn        omok.Cell    `json:"turn"`
	Outcome     omok.Outcome `json:"outcome"`
	Rows        []string     `json:"rows"`
	Moves       []omok.Move  `json:"moves"`
	WinningLine []omok.Move  `json:"winning_line,omitempty"`
}

type MoveRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type HumanMoveResponse struct {
	Move    omok.Move    `json:"move"`
	Outcome omok.Outcome `json:"outcome"`
}

type ComputerMoveResponse struct {
	Move      *omok.Move   `json:"move,omitempty"`
	Outcome   omok.Outcome `json:"outcome"`
	Score     int          `json:"score"`
	Nodes     int          `json:"nodes"`
	ElapsedMs int64        `json:"elapsed_ms"`
}

// TurnResponse is one websocket frame: the human move, the computer answer
// if the game continued, and the resulting board.
type TurnResponse struct {
	HumanMove    *omok.Move   `json:"human_move,omitempty"`
	ComputerMove *omok.Move   `json:"computer_move,omitempty"`
	Outcome      omok.Outcome `json:"outcome"`
	Rows         []string     `json:"rows,omitempty"`
	Error        string       `json:"error,omitempty"`
}
