package main

import (
	"net/http"
)

// analyzeBook runs the full pipeline for a book id: metadata scrape, text
// fetch, LLM analysis. Any stage failing fails the whole request; there are no
// partial results.
func (app *application) analyzeBook(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")

	result, err := app.analyzer.Run(r.Context(), bookID)
	if err != nil {
		app.serverError(w, r, err, "Failed to process book: "+err.Error())
		return
	}

	app.writeJSON(w, r, http.StatusOK, result)
}
