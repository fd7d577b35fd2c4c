package identity

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrTokenRejected indicates the provider refused the supplied ID token.
var ErrTokenRejected = errors.New("identity token rejected")

// Identity is the profile the provider attests for a verified token.
type Identity struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Client verifies federated login tokens with the identity provider.
type Client interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// HTTPClient implements Client against a Google-compatible tokeninfo API.
type HTTPClient struct {
	client *resty.Client
	logger *slog.Logger
}

// NewHTTPClient creates the identity client for the given provider.
func NewHTTPClient(baseURL string, logger *slog.Logger) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second)
	return &HTTPClient{client: client, logger: logger}
}

// Verify asks the provider to validate the token and returns the attested
// profile. An account cannot be keyed without an email, so a token that
// carries none is rejected as well.
func (c *HTTPClient) Verify(ctx context.Context, token string) (*Identity, error) {
	var ident Identity
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("id_token", token).
		SetResult(&ident).
		Get("/tokeninfo")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		c.logger.Warn("identity token verification failed",
			slog.Int("status", resp.StatusCode()),
		)
		return nil, ErrTokenRejected
	}
	if ident.Email == "" {
		return nil, ErrTokenRejected
	}
	return &ident, nil
}
