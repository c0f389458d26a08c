package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/mcoot/botarena/internal/api/apierr"
)

// maxBodyBytes bounds every request body
const maxBodyBytes = 64 << 10

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// decodeBody decodes the JSON request body into v. On failure it logs, writes
// a 400 and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, v any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
	if err == nil {
		return true
	}

	message := "invalid request body"
	if errors.Is(err, io.EOF) {
		message = "request body is empty"
	}
	logger.Warn("malformed request body",
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
	WriteError(w, NewInvalidRequestError(message))
	return false
}

// writeServiceError writes err and logs it when it is not the caller's fault
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	if apierr.Status(err) >= http.StatusInternalServerError {
		logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	WriteError(w, err)
}
