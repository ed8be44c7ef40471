package main

import (
	"encoding/json"
	"github.com/myrjola/gutengraph/internal/errors"
	"log/slog"
	"net/http"
)

// errorResponse is the uniform failure payload: clients distinguish success
// from failure by the HTTP status plus the presence of the error key.
type errorResponse struct {
	Error string `json:"error"`
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out, all we can do is log.
		app.logger.LogAttrs(r.Context(), slog.LevelError, "write response", errors.SlogError(err))
	}
}

// serverError logs err and responds with a 500 carrying the given user-facing message.
func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error, message string) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	app.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: message})
}

// clientError responds with a failure caused by the request itself, without logging a server error.
func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int, message string) {
	app.logger.DebugContext(r.Context(), "client error", "status", status, "message", message)
	app.writeJSON(w, r, status, errorResponse{Error: message})
}
