// Package rest serves the documents API over HTTP with a chi router.
// Every response body is an api.Envelope.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/gophdocs/internal/api"
)

const (
	textAccessDenied = "Access denied"
	textNotFound     = "Document not found"
	textBadRequest   = "Bad request"
	textInternal     = "Internal server error"
)

// maxBodySize caps request bodies; documents are a handful of short strings.
const maxBodySize = 1 << 20

func writeJSON[T any](w http.ResponseWriter, status int, env api.Envelope[T]) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func writeData[T any](w http.ResponseWriter, data T) {
	writeJSON(w, http.StatusOK, api.Envelope[T]{ErrorCode: api.ErrorCodeOK, Data: data})
}

func writeError(w http.ResponseWriter, status, code int, text string) {
	writeJSON(w, status, api.Envelope[any]{ErrorCode: code, ErrorText: text})
}

// readJSON decodes a single JSON value from the request body. Unknown
// fields are rejected.
func readJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if dec.More() {
		return errors.New("decode body: trailing data")
	}
	return nil
}
