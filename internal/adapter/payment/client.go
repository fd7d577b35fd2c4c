package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Client exposes operations against the payment gateway.
type Client interface {
	CreateOrder(ctx context.Context, amount int64) (*GatewayOrder, error)
	VerifySignature(gatewayOrderID, paymentID, signature string) bool
}

// GatewayOrder is the gateway-side order a client pays against.
// Amount is in the gateway's minor unit (paise).
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// HTTPClient implements Client against a Razorpay-compatible HTTP API.
type HTTPClient struct {
	client    *resty.Client
	keySecret string
	logger    *slog.Logger
}

// NewHTTPClient creates a gateway client authenticated with the key pair.
func NewHTTPClient(baseURL, keyID, keySecret string, logger *slog.Logger) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetBasicAuth(keyID, keySecret)
	return &HTTPClient{client: client, keySecret: keySecret, logger: logger}
}

// CreateOrder registers the amount with the gateway and returns the gateway
// order the storefront opens the payment popup against. Amount comes in whole
// currency units and is converted to the minor unit here.
func (c *HTTPClient) CreateOrder(ctx context.Context, amount int64) (*GatewayOrder, error) {
	var order GatewayOrder
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"amount":   amount * 100,
			"currency": "INR",
			"receipt":  "rcpt_" + uuid.NewString(),
		}).
		SetResult(&order).
		Post("/v1/orders")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		c.logger.Error("gateway order creation failed",
			slog.Int("status", resp.StatusCode()),
			slog.String("body", resp.String()),
		)
		return nil, fmt.Errorf("gateway error: %s", resp.Status())
	}
	return &order, nil
}

// VerifySignature checks the HMAC-SHA256 signature the gateway attaches to a
// completed payment.
func (c *HTTPClient) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
