package gutenberg

import (
	"context"
	"crypto/tls"
	"fmt"
	"github.com/myrjola/gutengraph/internal/errors"
	"github.com/myrjola/gutengraph/internal/models"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultBaseURL points to the public Project Gutenberg site.
const DefaultBaseURL = "https://www.gutenberg.org"

// ErrTextUnavailable is returned when neither plain-text URL scheme serves the book.
// The message doubles as the user-facing error of the text endpoint.
var ErrTextUnavailable = errors.NewSentinel("Failed to fetch book text. Text format not available.")

// UpstreamError reports a non-success status from the Gutenberg host.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gutenberg returned %d %s", e.StatusCode, e.StatusText())
}

// StatusText is the standard reason phrase for the upstream status.
func (e *UpstreamError) StatusText() string {
	return http.StatusText(e.StatusCode)
}

// Options configures the Gutenberg client.
type Options struct {
	// BaseURL of the content host. Defaults to DefaultBaseURL.
	BaseURL string
	// InsecureTLS skips certificate verification for the content host.
	InsecureTLS bool
}

// Client fetches book pages and plain-text bodies from a Gutenberg content host.
// One client is shared read-only across all requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(opts Options, logger *slog.Logger) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}
	if opts.InsecureTLS {
		// The workaround is confined to this one outbound client so that nothing
		// else in the process talks TLS unverified.
		// TODO: drop InsecureTLS once gutenberg.org serves a valid certificate chain.
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger.With("source", "GutenbergClient"),
	}
}

// PageURL is the canonical book-detail page for the given catalog number.
func (c *Client) PageURL(bookID string) string {
	return fmt.Sprintf("%s/ebooks/%s", c.baseURL, bookID)
}

// CoverURL is the medium-size cover image for the given catalog number.
func (c *Client) CoverURL(bookID string) string {
	return fmt.Sprintf("%s/cache/epub/%s/pg%s.cover.medium.jpg", c.baseURL, bookID, bookID)
}

// BookPage fetches the raw HTML of the book-detail page.
//
// A non-success status is reported as *UpstreamError so that callers can forward
// the upstream status to their own clients.
func (c *Client) BookPage(ctx context.Context, bookID string) (string, error) {
	body, status, err := c.get(ctx, c.PageURL(bookID))
	if err != nil {
		return "", err
	}
	if !status.success {
		return "", &UpstreamError{StatusCode: status.statusCode}
	}
	return body, nil
}

// Metadata fetches the book page and scrapes title, author and summary out of it.
func (c *Client) Metadata(ctx context.Context, bookID string) (models.BookMetadata, error) {
	page, err := c.BookPage(ctx, bookID)
	if err != nil {
		return models.BookMetadata{}, errors.Wrap(err, "fetch book page", slog.String("book_id", bookID))
	}
	metadata := ExtractMetadata(page, bookID, c.PageURL(bookID))
	metadata.CoverURL = c.CoverURL(bookID)
	return metadata, nil
}

// BookText fetches the plain-text body of a book.
//
// The primary URL scheme is tried first and the cache scheme second. Both
// failing with a non-success status yields ErrTextUnavailable. Network-level
// failures propagate as-is without trying the next scheme.
func (c *Client) BookText(ctx context.Context, bookID string) (string, error) {
	urls := []string{
		fmt.Sprintf("%s/files/%s/%s.txt", c.baseURL, bookID, bookID),
		fmt.Sprintf("%s/cache/epub/%s/pg%s.txt", c.baseURL, bookID, bookID),
	}
	for _, url := range urls {
		body, status, err := c.get(ctx, url)
		if err != nil {
			return "", err
		}
		if status.success {
			return body, nil
		}
		c.logger.DebugContext(ctx, "text format not found", "url", url, "status", status.statusCode)
	}
	return "", ErrTextUnavailable
}

type fetchStatus struct {
	success    bool
	statusCode int
}

func (c *Client) get(ctx context.Context, url string) (string, fetchStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fetchStatus{}, errors.Wrap(err, "create request", slog.String("url", url))
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fetchStatus{}, errors.Wrap(err, "fetch", slog.String("url", url))
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	status := fetchStatus{
		success:    resp.StatusCode >= 200 && resp.StatusCode < 300,
		statusCode: resp.StatusCode,
	}
	if !status.success {
		return "", status, nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fetchStatus{}, errors.Wrap(err, "read response body", slog.String("url", url))
	}
	return string(body), status, nil
}
