package main

import (
	"context"
	"github.com/myrjola/gutengraph/internal/e2etest"
	"github.com/myrjola/gutengraph/internal/errors"
	"github.com/myrjola/gutengraph/internal/logging"
	"github.com/myrjola/gutengraph/internal/models"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// testMetadata fetches the metadata of Alice's Adventures in Wonderland, a book
// that has been in the catalog since the nineties and is not going anywhere.
func testMetadata(client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var metadata models.BookMetadata
	status, err := client.GetJSON(ctx, "/api/metadata/11", &metadata)
	if err != nil {
		return errors.Wrap(err, "fetch metadata")
	}
	if status != http.StatusOK {
		return errors.New("unexpected status", slog.Int("status", status))
	}
	if metadata.Title == "" {
		return errors.New("metadata has no title")
	}
	return nil
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	ctx := context.Background()

	if len(os.Args) != 2 {
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <url>")
		os.Exit(1)
	}

	url := os.Args[1]
	ctx = logging.WithAttrs(ctx, slog.String("url", url))
	client := e2etest.NewClient(url)

	if err := client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not healthy", errors.SlogError(err))
		os.Exit(1)
	}
	if err := testMetadata(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing metadata", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
	os.Exit(0)
}
