package main

import (
	"context"
	"github.com/joho/godotenv"
	"github.com/myrjola/gutengraph/internal/ai"
	"github.com/myrjola/gutengraph/internal/analysis"
	"github.com/myrjola/gutengraph/internal/envstruct"
	"github.com/myrjola/gutengraph/internal/errors"
	"github.com/myrjola/gutengraph/internal/gutenberg"
	"github.com/myrjola/gutengraph/internal/logging"
	"github.com/myrjola/gutengraph/internal/pprofserver"
	"io/fs"
	"log/slog"
	"os"
)

type application struct {
	logger    *slog.Logger
	gutenberg *gutenberg.Client
	ai        *ai.Client
	analyzer  *analysis.Service
}

type config struct {
	Addr      string `env:"GUTENGRAPH_ADDR" envDefault:"localhost:4000"`
	PprofPort string `env:"GUTENGRAPH_PPROF_PORT" envDefault:":6060"`
	// GutenbergInsecureTLS defaults to true because gutenberg.org has been
	// serving an expired certificate. The workaround only affects the one
	// outbound client that talks to the content host.
	GutenbergBaseURL     string `env:"GUTENBERG_BASE_URL" envDefault:"https://www.gutenberg.org"`
	GutenbergInsecureTLS bool   `env:"GUTENBERG_INSECURE_TLS" envDefault:"true"`
	GroqAPIKey           string `env:"GROQ_API_KEY" envDefault:""`
	GroqBaseURL          string `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	GroqModel            string `env:"GROQ_MODEL" envDefault:"meta-llama/llama-4-scout-17b-16e-instruct"`
}

// run wires the application and starts the server. Tests call it directly with
// their own logger and environment, see internal/e2etest.
func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "parse environment configuration")
	}

	// Initialise pprof listening on localhost so that it's not open to the world.
	pprofserver.Launch(cfg.PprofPort, logger)

	gutenbergClient := gutenberg.NewClient(gutenberg.Options{
		BaseURL:     cfg.GutenbergBaseURL,
		InsecureTLS: cfg.GutenbergInsecureTLS,
	}, logger)
	aiClient := ai.NewClient(ai.Config{
		APIKey:  cfg.GroqAPIKey,
		BaseURL: cfg.GroqBaseURL,
		Model:   cfg.GroqModel,
	})

	app := application{
		logger:    logger,
		gutenberg: gutenbergClient,
		ai:        aiClient,
		analyzer:  analysis.NewService(gutenbergClient, aiClient, logger),
	}

	return app.configureAndStartServer(ctx, cfg.Addr)
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	logger := slog.New(loggerHandler)

	// A .env file is optional, the environment may be set by the deployment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Error(err.Error())
		os.Exit(1)
	}

	ctx := context.Background()
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server error", errors.SlogError(err))
		os.Exit(1)
	}
}
