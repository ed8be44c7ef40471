package models

// BookMetadata describes a Project Gutenberg catalog entry scraped from its book page.
// All fields are best-effort: missing pieces degrade to sentinel values instead of errors.
type BookMetadata struct {
	// ID is the Gutenberg catalog number supplied by the caller.
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	URL      string `json:"url"`
	CoverURL string `json:"cover_url"`
	Summary  string `json:"summary"`
}
