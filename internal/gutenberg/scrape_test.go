package gutenberg_test

import (
	"github.com/myrjola/gutengraph/internal/gutenberg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

const alicePage = `<!DOCTYPE html>
<html>
<head><title>Alice's Adventures in Wonderland | Project Gutenberg</title></head>
<body>
<h1 itemprop="name">Alice's Adventures in Wonderland by Lewis Carroll</h1>
<div class="summary-text-container">
  <!-- Always visible content -->
  <p>The story follows   Alice, a young girl who falls through a rabbit
  hole into a fantastical world.</p>
  <!-- Hidden checkbox -->
  <input type="checkbox" id="summary-toggle" class="toggle-checkbox">
  <span class="toggle-content">
    She meets peculiar creatures and attends a mad tea party.
    (This is an automatically generated summary.)
  </span>
  <!-- Clickable label to show less -->
  <label for="summary-toggle">Show less</label>
</div>
</body>
</html>`

func TestExtractMetadata(t *testing.T) {
	metadata := gutenberg.ExtractMetadata(alicePage, "11", "https://www.gutenberg.org/ebooks/11")

	require.Equal(t, "11", metadata.ID)
	require.Equal(t, "https://www.gutenberg.org/ebooks/11", metadata.URL)
	assert.Equal(t, "Alice's Adventures in Wonderland | Project Gutenberg", metadata.Title)
	assert.Equal(t, "Lewis Carroll", metadata.Author)
	// Visible and hidden segments joined by one space, tags stripped, whitespace
	// runs collapsed, disclaimer dropped.
	assert.Equal(t,
		"The story follows Alice, a young girl who falls through a rabbit hole into a fantastical world. "+
			"She meets peculiar creatures and attends a mad tea party.",
		metadata.Summary)
}

func TestExtractMetadata_fallbacks(t *testing.T) {
	tests := []struct {
		name        string
		html        string
		wantTitle   string
		wantAuthor  string
		wantSummary string
	}{
		{
			name:        "empty page",
			html:        "",
			wantTitle:   "Unknown Title",
			wantAuthor:  "Unknown Author",
			wantSummary: "No summary available for this book.",
		},
		{
			name:        "no title tag",
			html:        `<html><body><h1>A Tale by Someone</h1></body></html>`,
			wantTitle:   "Unknown Title",
			wantAuthor:  "Someone",
			wantSummary: "No summary available for this book.",
		},
		{
			name: "older bibrec layout",
			html: `<html><head><title>Some Book</title></head><body>` +
				`<div class="bibrec-desc"><p>An   older  description.</p></div></body></html>`,
			wantTitle:   "Some Book",
			wantAuthor:  "Unknown Author",
			wantSummary: "An older description.",
		},
		{
			name: "summary container without comment markers degrades to bibrec",
			html: `<html><head><title>Some Book</title></head><body>` +
				`<div class="summary-text-container"><p>Unrecognised layout.</p></div>` +
				`<div class="bibrec-desc">Fallback text.</div></body></html>`,
			wantTitle:   "Some Book",
			wantAuthor:  "Unknown Author",
			wantSummary: "Fallback text.",
		},
		{
			name: "unrecognised third layout yields the sentinel",
			html: `<html><head><title>Some Book</title></head><body>` +
				`<div class="book-description">This layout is never scraped.</div></body></html>`,
			wantTitle:   "Some Book",
			wantAuthor:  "Unknown Author",
			wantSummary: "No summary available for this book.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata := gutenberg.ExtractMetadata(tt.html, "1", "https://example.com/ebooks/1")
			assert.Equal(t, tt.wantTitle, metadata.Title)
			assert.Equal(t, tt.wantAuthor, metadata.Author)
			assert.Equal(t, tt.wantSummary, metadata.Summary)
		})
	}
}

func TestExtractMetadata_summaryQuotesStripped(t *testing.T) {
	html := `<html><body><div class="summary-text-container">
<!-- Always visible content -->
"A quoted summary
<!-- Hidden checkbox -->
<span class="toggle-content">
that ends quoted."
</span>
<!-- Clickable label to show less -->
</div></body></html>`

	metadata := gutenberg.ExtractMetadata(html, "1", "https://example.com/ebooks/1")
	assert.Equal(t, "A quoted summary that ends quoted.", metadata.Summary)
}
