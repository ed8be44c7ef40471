package main

import (
	"encoding/json"
	"net/http"
)

type analyzeTextRequest struct {
	Text  string `json:"text"`
	Title string `json:"title"`
}

// analyzeText runs the LLM analysis over caller-supplied text, skipping the
// scrape stage. This serves callers that already hold the book body.
func (app *application) analyzeText(w http.ResponseWriter, r *http.Request) {
	var payload analyzeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "Invalid JSON request body")
		return
	}
	if payload.Text == "" {
		app.clientError(w, r, http.StatusBadRequest, "No text provided for analysis")
		return
	}

	bookAnalysis, err := app.ai.Analyze(r.Context(), payload.Text, payload.Title)
	if err != nil {
		app.serverError(w, r, err, "Failed to analyze book: "+err.Error())
		return
	}

	app.writeJSON(w, r, http.StatusOK, bookAnalysis)
}
