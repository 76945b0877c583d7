package providers

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// DefaultTokenURL is the Baidu AI Cloud OAuth2 token endpoint.
const DefaultTokenURL = "https://aip.baidubce.com/oauth/2.0/token"

// Credentials identify the caller to the token endpoint.
type Credentials struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
}

// Complete reports whether both halves of the key pair are set.
func (c Credentials) Complete() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// TokenSource supplies access tokens to service clients.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenCache acquires one access token lazily and reuses it for the rest of
// the run. It is never refreshed or persisted. A failed acquisition is not
// cached, so the next caller makes its own single attempt.
type TokenCache struct {
	creds  Credentials
	client *http.Client

	mu    sync.Mutex
	token string
}

// NewTokenCache creates an empty cache. A nil client uses http.DefaultClient.
func NewTokenCache(creds Credentials, client *http.Client) *TokenCache {
	if creds.TokenURL == "" {
		creds.TokenURL = DefaultTokenURL
	}
	return &TokenCache{creds: creds, client: client}
}

// Token returns the cached token, acquiring it on first use.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" {
		return c.token, nil
	}
	if !c.creds.Complete() {
		return "", fmt.Errorf("%w: API key and secret are required", ErrCredentials)
	}

	cfg := clientcredentials.Config{
		ClientID:     c.creds.ClientID,
		ClientSecret: c.creds.ClientSecret,
		TokenURL:     c.creds.TokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	if c.client != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.client)
	}

	tok, err := cfg.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCredentials, err)
	}
	c.token = tok.AccessToken
	return c.token, nil
}

// Compile-time interface check.
var _ TokenSource = (*TokenCache)(nil)
