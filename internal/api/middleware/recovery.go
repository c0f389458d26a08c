package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/botarena/internal/api/apierr"
	"github.com/mcoot/botarena/internal/middleware"
)

// Recovery answers panics with the standard JSON internal error body
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, writeInternalError)
}

func writeInternalError(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
