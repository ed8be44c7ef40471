package main

import (
	"github.com/myrjola/gutengraph/internal/errors"
	"github.com/myrjola/gutengraph/internal/gutenberg"
	"log/slog"
	"net/http"
)

// bookMetadata scrapes and returns the metadata of one Gutenberg book.
//
// A non-success status from the content host is forwarded to the caller so
// that, e.g., an unknown book id shows up as 404 rather than a generic 500.
func (app *application) bookMetadata(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")

	metadata, err := app.gutenberg.Metadata(r.Context(), bookID)
	if err != nil {
		var upstream *gutenberg.UpstreamError
		if errors.As(err, &upstream) {
			app.logger.DebugContext(r.Context(), "metadata fetch failed upstream",
				slog.String("book_id", bookID), slog.Int("status", upstream.StatusCode))
			app.clientError(w, r, upstream.StatusCode,
				"Failed to fetch book metadata: "+upstream.StatusText())
			return
		}
		app.serverError(w, r, err, "Failed to fetch book metadata")
		return
	}

	app.writeJSON(w, r, http.StatusOK, metadata)
}
