package main

import (
	"github.com/justinas/alice"
	"net/http"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/healthy", app.healthy)
	mux.HandleFunc("GET /api/metadata/{id}", app.bookMetadata)
	mux.HandleFunc("GET /api/text/{id}", app.bookText)
	mux.HandleFunc("GET /api/analyze/{id}", app.analyzeBook)
	mux.HandleFunc("POST /api/analyze/book", app.analyzeText)

	base := alice.New(app.recoverPanic, app.logRequest, commonHeaders)
	return base.Then(mux)
}
