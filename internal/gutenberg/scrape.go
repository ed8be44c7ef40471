package gutenberg

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/myrjola/gutengraph/internal/models"
	"regexp"
	"strings"
)

// Fallback values when the page does not contain the expected markup.
const (
	unknownTitle  = "Unknown Title"
	unknownAuthor = "Unknown Author"
	// noSummary is the terminal sentinel of the summary strategy chain.
	noSummary = "No summary available for this book."
)

// generatedNote is the disclaimer Gutenberg appends to machine-written summaries.
const generatedNote = "(This is an automatically generated summary.)"

var (
	titlePattern  = regexp.MustCompile(`<title>(.+?)</title>`)
	authorPattern = regexp.MustCompile(`by (.+?)</h1>`)
	// The summary container interleaves markup with HTML comments that split the
	// always-visible lead from the collapsed remainder. Comments are not
	// addressable with CSS selectors, hence the patterns.
	visiblePattern = regexp.MustCompile(`(?s)<!-- Always visible content -->\s*(.+?)<!-- Hidden checkbox`)
	hiddenPattern  = regexp.MustCompile(`(?s)<span class="toggle-content">\s*(.+?)</span>\s*<!-- Clickable label to show less`)

	whitespaceRuns = regexp.MustCompile(`\s+`)
	edgeQuotes     = regexp.MustCompile(`^["']|["']$`)
)

// ExtractMetadata scrapes title, author and summary from a Gutenberg book-detail page.
//
// It is a pure best-effort function: it never fails, absent markup degrades to
// the fallback constants above. Only the two known page layouts are recognised;
// a third layout silently yields the summary sentinel.
func ExtractMetadata(html, bookID, sourceURL string) models.BookMetadata {
	title := unknownTitle
	if match := titlePattern.FindStringSubmatch(html); match != nil {
		title = match[1]
	}

	author := unknownAuthor
	if match := authorPattern.FindStringSubmatch(html); match != nil {
		author = match[1]
	}

	return models.BookMetadata{
		ID:      bookID,
		Title:   title,
		Author:  author,
		URL:     sourceURL,
		Summary: extractSummary(html),
	}
}

// extractSummary tries the summary strategies in order, stopping at the first
// one that produces text.
func extractSummary(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return noSummary
	}

	summary := noSummary

	// Current layout: a summary-text-container whose lead text is always shown
	// and whose remainder hides behind a show-more toggle.
	if container, htmlErr := doc.Find("div.summary-text-container").First().Html(); htmlErr == nil && container != "" {
		if visible := visiblePattern.FindStringSubmatch(container); visible != nil {
			text := strings.TrimSpace(visible[1])
			if hidden := hiddenPattern.FindStringSubmatch(container); hidden != nil {
				text += " " + strings.TrimSpace(hidden[1])
			}
			summary = cleanSummary(text)
		}
	}

	// Older layout: a plain bibrec-desc div.
	if summary == noSummary {
		if desc := doc.Find("div.bibrec-desc").First(); desc.Length() > 0 {
			summary = cleanSummary(desc.Text())
		}
	}

	if summary == "" {
		return noSummary
	}
	return summary
}

// cleanSummary normalises captured summary markup: strips tags, collapses
// whitespace runs, drops the auto-generation disclaimer and removes quote
// characters hugging the text.
func cleanSummary(text string) string {
	text = stripTags(text)
	text = whitespaceRuns.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, generatedNote, "")
	text = edgeQuotes.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func stripTags(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return doc.Text()
}
