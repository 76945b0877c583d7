package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const (
	ErnieName = "ernie"

	// DefaultErnieEndpoint is the ERNIE 4.5 chat endpoint on Baidu AI Cloud.
	DefaultErnieEndpoint = "https://aip.baidubce.com/rpc/2.0/ai_custom/v1/wenxinworkshop/chat/ernie-4.5-8k"
)

// ErnieConfig holds configuration for the native ERNIE client.
type ErnieConfig struct {
	Endpoint    string
	Temperature float64
	TopP        float64
	HTTPClient  *http.Client // Optional (tests, timeouts)
}

// ErnieGenerator implements Generator against the native ERNIE chat API,
// authenticated with an access token in the query string.
type ErnieGenerator struct {
	endpoint    string
	temperature float64
	topP        float64
	client      *http.Client
}

type ernieMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ernieRequest struct {
	Messages    []ernieMessage `json:"messages"`
	Temperature float64        `json:"temperature"`
	TopP        float64        `json:"top_p"`
}

type ernieResponse struct {
	Result    string `json:"result"`
	ErrorCode int    `json:"error_code"`
	ErrorMsg  string `json:"error_msg"`
}

// NewErnieGenerator creates a new ERNIE client.
func NewErnieGenerator(cfg ErnieConfig) *ErnieGenerator {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultErnieEndpoint
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.TopP <= 0 {
		cfg.TopP = DefaultTopP
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	return &ErnieGenerator{
		endpoint:    cfg.Endpoint,
		temperature: cfg.Temperature,
		topP:        cfg.TopP,
		client:      cfg.HTTPClient,
	}
}

// Name returns the provider identifier.
func (g *ErnieGenerator) Name() string {
	return ErnieName
}

// Generate asks ERNIE to turn markup into a page.
func (g *ErnieGenerator) Generate(ctx context.Context, tokens TokenSource, markup string) Outcome[string] {
	token, err := tokens.Token(ctx)
	if err != nil {
		return Failure[string](err)
	}

	endpoint, err := url.Parse(g.endpoint)
	if err != nil {
		return Failure[string](fmt.Errorf("%w: invalid endpoint: %v", ErrServiceCall, err))
	}
	q := endpoint.Query()
	q.Set("access_token", token)
	endpoint.RawQuery = q.Encode()

	payload, err := json.Marshal(ernieRequest{
		Messages:    []ernieMessage{{Role: "user", Content: BuildPrompt(markup)}},
		Temperature: g.temperature,
		TopP:        g.topP,
	})
	if err != nil {
		return Failure[string](fmt.Errorf("%w: marshal request: %v", ErrServiceCall, err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return Failure[string](fmt.Errorf("%w: create request: %v", ErrServiceCall, err))
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := doRequest(g.client, req)
	if err != nil {
		return Failure[string](err)
	}

	var resp ernieResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Failure[string](fmt.Errorf("%w: %v", ErrMalformedResponse, err))
	}
	if resp.ErrorCode != 0 {
		return Failure[string](fmt.Errorf("%w: error %d: %s", ErrServiceCall, resp.ErrorCode, resp.ErrorMsg))
	}
	return pageOutcome(resp.Result)
}

// Compile-time interface check.
var _ Generator = (*ErnieGenerator)(nil)
