package httpresponse

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	errs "omok/internal/errors"
)

type Response[T any] struct {
	Status int `json:"Status"`
	Body   T   `json:"Body,omitempty"`
}

type ErrorResponse struct {
	ErrorDescription string `json:"ErrorDescription"`
}

const INTERNALERRORJSON = "{\"Status\": 500,\"Body\":{\"ErrorDescription\": \"Internal server error\"}}"

const MALFORMEDJSON_errorDesc = "json unmarshalling error"

func WriteResponseWithStatus(w http.ResponseWriter, status int, body any) {
	jsonByte, err := marshalStatusJson(status, body)
	if err != nil {
		WriteInternalErrorResponse(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(jsonByte)
}

func WriteErrorWithStatus(w http.ResponseWriter, status int, desc string) {
	WriteResponseWithStatus(w, status, ErrorResponse{ErrorDescription: desc})
}

// StatusFromError maps engine and session errors to HTTP statuses. Anything
// unrecognised is a 500.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrOutOfBounds),
		errors.Is(err, errs.ErrInvalidDifficulty),
		errors.Is(err, errs.ErrInvalidBoardSize),
		errors.Is(err, errs.ErrMalformedBoard):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrCellOccupied),
		errors.Is(err, errs.ErrGameOver),
		errors.Is(err, errs.ErrNotYourTurn):
		return http.StatusConflict
	case errors.Is(err, errs.ErrGameNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err with the status StatusFromError picks. Internal
// errors are not described to the client.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusFromError(err)
	if status == http.StatusInternalServerError {
		WriteInternalErrorResponse(w)
		return
	}
	WriteErrorWithStatus(w, status, err.Error())
}

func marshalStatusJson(status int, body any) ([]byte, error) {
	response := Response[any]{
		Status: status,
		Body:   body,
	}
	marshal, err := json.Marshal(response)
	if err != nil {
		return nil, err
	}
	return marshal, nil
}

func WriteInternalErrorResponse(w http.ResponseWriter) {
	// like http.Error but with a JSON content type
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = fmt.Fprintln(w, INTERNALERRORJSON)
}
