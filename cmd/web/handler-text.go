package main

import (
	"github.com/myrjola/gutengraph/internal/errors"
	"github.com/myrjola/gutengraph/internal/gutenberg"
	"net/http"
)

type bookTextResponse struct {
	Text string `json:"text"`
}

// bookText returns the plain-text body of one Gutenberg book.
func (app *application) bookText(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")

	text, err := app.gutenberg.BookText(r.Context(), bookID)
	if err != nil {
		if errors.Is(err, gutenberg.ErrTextUnavailable) {
			app.clientError(w, r, http.StatusNotFound, gutenberg.ErrTextUnavailable.Error())
			return
		}
		app.serverError(w, r, err, "Failed to fetch book text. Please check if the book ID is valid.")
		return
	}

	app.writeJSON(w, r, http.StatusOK, bookTextResponse{Text: text})
}
