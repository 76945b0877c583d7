package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	OpenAIName = "openai"

	// DefaultOpenAIBaseURL is the OpenAI-compatible Qianfan v2 endpoint.
	DefaultOpenAIBaseURL = "https://qianfan.baidubce.com/v2"
	DefaultOpenAIModel   = "ernie-4.5-8k-preview"
)

// OpenAIConfig holds configuration for the OpenAI-compatible client.
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	TopP        float64
	HTTPClient  *http.Client // Optional (tests, timeouts)
}

// OpenAIGenerator implements Generator using the official OpenAI SDK against
// any chat-completions compatible endpoint. SDK retries are disabled.
type OpenAIGenerator struct {
	apiKey      string
	model       string
	temperature float64
	topP        float64
	client      openai.Client
}

// NewOpenAIGenerator creates a new OpenAI-compatible client.
func NewOpenAIGenerator(cfg OpenAIConfig) *OpenAIGenerator {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenAIBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultOpenAIModel
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.TopP <= 0 {
		cfg.TopP = DefaultTopP
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithMaxRetries(0),
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	return &OpenAIGenerator{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		topP:        cfg.TopP,
		client:      openai.NewClient(opts...),
	}
}

// Name returns the provider identifier.
func (g *OpenAIGenerator) Name() string {
	return OpenAIName
}

// Generate asks the chat model to turn markup into a page. The API key
// authenticates the call, so the token source is not consulted.
func (g *OpenAIGenerator) Generate(ctx context.Context, _ TokenSource, markup string) Outcome[string] {
	if g.apiKey == "" {
		return Failure[string](fmt.Errorf("%w: API key is required", ErrCredentials))
	}

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(BuildPrompt(markup)),
		},
		Temperature: openai.Float(g.temperature),
		TopP:        openai.Float(g.topP),
	})
	if err != nil {
		return Failure[string](mapOpenAIError(err))
	}
	if len(resp.Choices) == 0 {
		return Failure[string](fmt.Errorf("%w: no choices", ErrMalformedResponse))
	}
	return pageOutcome(resp.Choices[0].Message.Content)
}

func mapOpenAIError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden {
			return fmt.Errorf("%w: status %d", ErrCredentials, apiErr.StatusCode)
		}
		if apiErr.Message != "" {
			return fmt.Errorf("%w: status %d: %s", ErrServiceCall, apiErr.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("%w: status %d", ErrServiceCall, apiErr.StatusCode)
	}
	return fmt.Errorf("%w: %v", ErrServiceCall, err)
}

// Compile-time interface check.
var _ Generator = (*OpenAIGenerator)(nil)
