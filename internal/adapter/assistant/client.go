package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrEmptyReply indicates the model returned no usable candidate.
var ErrEmptyReply = errors.New("assistant returned no reply")

// Client exposes the chat completion used by the storefront assistant.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// HTTPClient implements Client against a generative-language HTTP API.
type HTTPClient struct {
	client *resty.Client
	model  string
	apiKey string
	logger *slog.Logger
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// NewHTTPClient creates the assistant client for the given model.
func NewHTTPClient(baseURL, apiKey, model string, logger *slog.Logger) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second)
	return &HTTPClient{client: client, model: model, apiKey: apiKey, logger: logger}
}

// Generate sends one prompt and returns the first candidate's text.
func (c *HTTPClient) Generate(ctx context.Context, prompt string) (string, error) {
	var out generateResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}}).
		SetResult(&out).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		c.logger.Error("assistant request failed",
			slog.Int("status", resp.StatusCode()),
			slog.String("body", resp.String()),
		)
		return "", fmt.Errorf("assistant error: %s", resp.Status())
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyReply
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
