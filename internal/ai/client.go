package ai

import (
	"context"
	"fmt"
	"github.com/myrjola/gutengraph/internal/errors"
	"github.com/myrjola/gutengraph/internal/models"
	"github.com/sashabaranov/go-openai"
	"net/http"
	"time"
)

// Defaults for the Groq chat-completion endpoint. Groq speaks the OpenAI wire
// format, so the stock client works with a swapped base URL.
const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "meta-llama/llama-4-scout-17b-16e-instruct"
)

// Low temperature biases the model towards deterministic, well-formed JSON.
const analysisTemperature = 0.2

var (
	// ErrEmptyCompletion is returned when the completion has no content to parse.
	ErrEmptyCompletion = errors.NewSentinel("Empty response from LLM")
	// ErrMalformedAnalysis is returned when the completion content is not the
	// bare JSON object the prompt demands.
	ErrMalformedAnalysis = errors.NewSentinel("malformed analysis response")
)

// Config for the analysis client. The API key is read once at startup and the
// client is shared read-only across requests.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

type Client struct {
	client *openai.Client
	model  string
}

func NewClient(cfg Config) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = DefaultBaseURL
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	// Book analysis completions are slow; give them more room than the transport default.
	clientConfig.HTTPClient = &http.Client{Timeout: 2 * time.Minute}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

// Analyze asks the model to extract characters and their pairwise interactions
// from the book text.
//
// The model is trusted to honor the prompt's bare-JSON contract. Any deviation
// fails with ErrMalformedAnalysis without retrying, so callers must treat this
// as a best-effort, fail-fast operation.
func (c *Client) Analyze(ctx context.Context, text, title string) (models.BookAnalysis, error) {
	prompt := buildAnalysisPrompt(title, text)

	completion, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       c.model,
			Temperature: analysisTemperature,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		return models.BookAnalysis{}, errors.Wrap(err, "create chat completion")
	}

	if len(completion.Choices) == 0 {
		return models.BookAnalysis{}, ErrEmptyCompletion
	}
	content := completion.Choices[0].Message.Content
	if content == "" {
		return models.BookAnalysis{}, ErrEmptyCompletion
	}

	analysis, err := decodeAnalysis(content)
	if err != nil {
		return models.BookAnalysis{}, fmt.Errorf("%w: %w", ErrMalformedAnalysis, err)
	}
	return analysis, nil
}
