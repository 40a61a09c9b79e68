package game

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"omok/internal/domain/game"
	"omok/internal/httpresponse"
	gameuc "omok/internal/usecase/game"
	"omok/internal/utils"
)

type GameHandler struct {
	log    *zap.SugaredLogger
	gameUC *gameuc.GameUseCase
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewGameHandler(log *zap.SugaredLogger, gameUC *gameuc.GameUseCase) *GameHandler {
	return &GameHandler{
		log:    log,
		gameUC: gameUC,
	}
}

// Routes mounts the game endpoints on r.
func (g *GameHandler) Routes(r chi.Router) {
	r.Post("/games", g.HandleNewGame)
	r.Route("/games/{gameKey}", func(r chi.Router) {
		r.Get("/", g.HandleGetGame)
		r.Delete("/", g.HandleAbandonGame)
		r.Post("/moves", g.HandleHumanMove)
		r.Post("/computer-move", g.HandleComputerMove)
		r.Get("/sgf", g.HandleExportSGF)
	})
	r.Get("/play", g.HandlePlay)
}

func (g *GameHandler) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	var req game.CreateGameRequest
	if r.ContentLength != 0 {
		if err := utils.DecodeJSONRequest(r, &req); err != nil {
			g.log.Errorf("new game: %v", err)
			httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
			return
		}
	}

	state, err := g.gameUC.CreateGame(r.Context(), req.Difficulty)
	if err != nil {
		g.writeError(w, "new game", err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusCreated, state)
}

func (g *GameHandler) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	state, err := g.gameUC.GetGame(r.Context(), chi.URLParam(r, "gameKey"))
	if err != nil {
		g.writeError(w, "get game", err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, state)
}

func (g *GameHandler) HandleHumanMove(w http.ResponseWriter, r *http.Request) {
	var req game.MoveRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		g.log.Errorf("human move: %v", err)
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}

	resp, err := g.gameUC.PlayHumanMove(r.Context(), chi.URLParam(r, "gameKey"), req.Row, req.Col)
	if err != nil {
		g.writeError(w, "human move", err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

func (g *GameHandler) HandleComputerMove(w http.ResponseWriter, r *http.Request) {
	resp, err := g.gameUC.PlayComputerMove(r.Context(), chi.URLParam(r, "gameKey"))
	if err != nil {
		g.writeError(w, "computer move", err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

func (g *GameHandler) HandleExportSGF(w http.ResponseWriter, r *http.Request) {
	gameKey := chi.URLParam(r, "gameKey")
	sgfText, err := g.gameUC.ExportSGF(r.Context(), gameKey)
	if err != nil {
		g.writeError(w, "export sgf", err)
		return
	}
	w.Header().Set("Content-Type", "application/x-go-sgf")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+gameKey+".sgf\"")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(sgfText)); err != nil {
		g.log.Errorf("export sgf: write: %v", err)
	}
}

func (g *GameHandler) HandleAbandonGame(w http.ResponseWriter, r *http.Request) {
	if err := g.gameUC.AbandonGame(r.Context(), chi.URLParam(r, "gameKey")); err != nil {
		g.writeError(w, "abandon game", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandlePlay runs a whole game over one websocket. Each frame from the client
// is a human move; the reply carries the computer's answer.
func (g *GameHandler) HandlePlay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	gameKey := r.URL.Query().Get("game_key")
	if gameKey == "" {
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, "game_key is required")
		return
	}

	state, err := g.gameUC.GetGame(ctx, gameKey)
	if err != nil {
		g.writeError(w, "play", err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Errorf("play: upgrade: %v", err)
		return
	}
	defer conn.Close()

	if err := conn.WriteJSON(state); err != nil {
		g.log.Errorf("play: write state: %v", err)
		return
	}

	for {
		var move game.MoveRequest
		if err := conn.ReadJSON(&move); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				g.log.Errorf("play %s: read: %v", gameKey, err)
			}
			return
		}
		g.log.Debugf("play %s: human move %d,%d", gameKey, move.Row, move.Col)

		turn, err := g.gameUC.PlayTurn(ctx, gameKey, move.Row, move.Col)
		if err != nil {
			g.log.Errorf("play %s: %v", gameKey, err)
			turn = game.TurnResponse{Error: err.Error()}
			if httpresponse.StatusFromError(err) == http.StatusInternalServerError {
				turn.Error = "internal error"
			}
		}
		if err := conn.WriteJSON(turn); err != nil {
			g.log.Errorf("play %s: write: %v", gameKey, err)
			return
		}
	}
}

func (g *GameHandler) writeError(w http.ResponseWriter, op string, err error) {
	if httpresponse.StatusFromError(err) == http.StatusInternalServerError {
		g.log.Errorf("%s: %v", op, err)
	} else {
		g.log.Infof("%s: %v", op, err)
	}
	httpresponse.WriteError(w, err)
}
