package analysis

import (
	"context"
	"github.com/myrjola/gutengraph/internal/ai"
	"github.com/myrjola/gutengraph/internal/errors"
	"github.com/myrjola/gutengraph/internal/gutenberg"
	"github.com/myrjola/gutengraph/internal/models"
	"golang.org/x/sync/errgroup"
	"log/slog"
)

// Service orchestrates the full book-analysis pipeline:
// scrape metadata, fetch text, prompt the model, assemble the result.
type Service struct {
	gutenberg *gutenberg.Client
	ai        *ai.Client
	logger    *slog.Logger
}

func NewService(gutenbergClient *gutenberg.Client, aiClient *ai.Client, logger *slog.Logger) *Service {
	return &Service{
		gutenberg: gutenbergClient,
		ai:        aiClient,
		logger:    logger.With("source", "AnalysisService"),
	}
}

// Run executes the pipeline for one book id.
//
// Metadata and text are independent and fetched concurrently; both must
// complete before the analysis stage starts. The first failing stage aborts the
// whole run, there are no retries and no partial results.
func (s *Service) Run(ctx context.Context, bookID string) (*models.AnalysisResult, error) {
	var (
		metadata models.BookMetadata
		text     string
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		if metadata, err = s.gutenberg.Metadata(groupCtx, bookID); err != nil {
			return errors.Wrap(err, "fetch book metadata", slog.String("book_id", bookID))
		}
		return nil
	})
	group.Go(func() error {
		var err error
		if text, err = s.gutenberg.BookText(groupCtx, bookID); err != nil {
			return errors.Wrap(err, "fetch book text", slog.String("book_id", bookID))
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "book fetched, starting analysis",
		"book_id", bookID, "title", metadata.Title, "text_length", len(text))

	bookAnalysis, err := s.ai.Analyze(ctx, text, metadata.Title)
	if err != nil {
		return nil, errors.Wrap(err, "analyze book", slog.String("book_id", bookID))
	}

	return &models.AnalysisResult{
		Metadata:     metadata,
		Text:         text,
		Characters:   bookAnalysis.Characters,
		Interactions: bookAnalysis.Interactions,
	}, nil
}
