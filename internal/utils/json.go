package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// requestBodyLimit caps JSON bodies; the largest request is a 19x19 board.
const requestBodyLimit = 64 << 10

// DecodeJSONRequest decodes r's body into dst, rejecting unknown fields and
// trailing data.
func DecodeJSONRequest(r *http.Request, dst interface{}) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, requestBodyLimit))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if decoder.More() {
		return fmt.Errorf("invalid JSON: trailing data after object")
	}
	return nil
}
