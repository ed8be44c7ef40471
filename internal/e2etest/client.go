package e2etest

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/myrjola/gutengraph/internal/errors"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client drives the JSON API of a running server in tests and smoketests.
type Client struct {
	client *http.Client
	url    string
}

func NewClient(url string) *Client {
	return &Client{
		client: &http.Client{},
		url:    url,
	}
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = http.NewRequestWithContext(
			ctx,
			http.MethodGet,
			c.url+urlPath,
			nil,
		); err != nil {
			return errors.Wrap(err, "create request")
		}

		if resp, err = c.client.Do(req); err == nil {
			if resp.StatusCode == http.StatusOK {
				if err = resp.Body.Close(); err != nil {
					return errors.Wrap(err, "close response body")
				}
				return nil
			}
			if err = resp.Body.Close(); err != nil {
				return errors.Wrap(err, "close response body")
			}
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "context cancelled")
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(100 * time.Millisecond)
		}
	}
}

// Get fetches a URL and returns the response.
func (c *Client) Get(ctx context.Context, urlPath string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+urlPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	return resp, nil
}

// GetJSON fetches a URL and decodes the response body into v.
// It returns the HTTP status code alongside any decoding error.
func (c *Client) GetJSON(ctx context.Context, urlPath string, v any) (int, error) {
	resp, err := c.Get(ctx, urlPath)
	if err != nil {
		return 0, err
	}
	return decodeResponse(resp, v)
}

// PostJSON posts body as JSON to a URL and decodes the response body into v.
// It returns the HTTP status code alongside any decoding error.
func (c *Client) PostJSON(ctx context.Context, urlPath string, body any, v any) (int, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return 0, errors.Wrap(err, "encode request body")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+urlPath, bytes.NewReader(encoded))
	if err != nil {
		return 0, errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "do request")
	}
	return decodeResponse(resp, v)
}

func decodeResponse(resp *http.Response, v any) (int, error) {
	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, errors.Wrap(err, "read response body")
	}
	if v == nil {
		return resp.StatusCode, nil
	}
	if err = json.Unmarshal(body, v); err != nil {
		return resp.StatusCode, errors.Wrap(err, "decode response body",
			slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
	}
	return resp.StatusCode, nil
}
