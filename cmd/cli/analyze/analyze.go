package analyze

import (
	"encoding/json"
	"github.com/myrjola/gutengraph/internal/ai"
	"github.com/myrjola/gutengraph/internal/analysis"
	"github.com/myrjola/gutengraph/internal/errors"
	"github.com/myrjola/gutengraph/internal/gutenberg"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
	"strconv"
)

var Group = &cobra.Group{
	ID:    "analyze",
	Title: "Book analysis",
}

var includeText bool

func init() {
	Book.Flags().BoolVar(&includeText, "include-text", false, "include the full book text in the output")
}

// Book runs the full pipeline for a Gutenberg book id and prints the result as JSON.
var Book = &cobra.Command{
	Use:     "book [book id]",
	Short:   "Fetch a Gutenberg book and extract its character graph",
	GroupID: "analyze",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
		service := analysis.NewService(newGutenbergClient(logger), newAIClient(), logger)

		result, err := service.Run(cmd.Context(), args[0])
		if err != nil {
			return errors.Wrap(err, "run analysis", slog.String("book_id", args[0]))
		}
		if !includeText {
			result.Text = ""
		}
		return printJSON(result)
	},
}

// Text analyses a local text file, skipping the scrape stage.
var Text = &cobra.Command{
	Use:     "text [file] [title]",
	Short:   "Extract a character graph from a local plain-text file",
	GroupID: "analyze",
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrap(err, "read text file", slog.String("file", args[0]))
		}
		title := ""
		if len(args) > 1 {
			title = args[1]
		}

		bookAnalysis, err := newAIClient().Analyze(cmd.Context(), string(text), title)
		if err != nil {
			return errors.Wrap(err, "analyze text", slog.String("file", args[0]))
		}
		return printJSON(bookAnalysis)
	},
}

func newGutenbergClient(logger *slog.Logger) *gutenberg.Client {
	insecure := true
	if v, ok := os.LookupEnv("GUTENBERG_INSECURE_TLS"); ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			insecure = parsed
		}
	}
	return gutenberg.NewClient(gutenberg.Options{
		BaseURL:     os.Getenv("GUTENBERG_BASE_URL"),
		InsecureTLS: insecure,
	}, logger)
}

func newAIClient() *ai.Client {
	return ai.NewClient(ai.Config{
		APIKey:  os.Getenv("GROQ_API_KEY"),
		BaseURL: os.Getenv("GROQ_BASE_URL"),
		Model:   os.Getenv("GROQ_MODEL"),
	})
}

func printJSON(v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode result")
	}
	_, _ = os.Stdout.Write(append(encoded, '\n'))
	return nil
}
