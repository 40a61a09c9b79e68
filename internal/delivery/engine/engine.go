package engine

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"omok/internal/domain/game"
	"omok/internal/httpresponse"
	gameuc "omok/internal/usecase/game"
)

type EngineHandler struct {
	log    *zap.SugaredLogger
	gameUC *gameuc.GameUseCase
}

func NewEngineHandler(log *zap.SugaredLogger, gameUC *gameuc.GameUseCase) *EngineHandler {
	return &EngineHandler{
		log:    log,
		gameUC: gameUC,
	}
}

// HandleGenerateMove suggests White's move for a position given as rows.
// Nothing is stored.
func (e *EngineHandler) HandleGenerateMove(w http.ResponseWriter, r *http.Request) {
	var req game.EngineMoveRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeJSONError(e.log, w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if len(req.Rows) == 0 {
		writeJSONError(e.log, w, http.StatusBadRequest, "rows are required")
		return
	}

	resp, err := e.gameUC.SuggestMove(r.Context(), req.Rows, req.Depth)
	if err != nil {
		status := httpresponse.StatusFromError(err)
		if status == http.StatusInternalServerError {
			e.log.Errorf("failed to generate move: %v", err)
			writeJSONError(e.log, w, status, "Failed to generate move")
			return
		}
		writeJSONError(e.log, w, status, err.Error())
		return
	}

	writeJSON(e.log, w, http.StatusOK, resp)
}

func writeJSON(log *zap.SugaredLogger, w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Errorf("writeJSON encode error: %v", err)
	}
}

func writeJSONError(log *zap.SugaredLogger, w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
	log.Debugf("writeJSONError: %s", msg)
}
