package test

import (
	"context"

	"github.com/foodkart/foodkart/internal/adapter/identity"
	"github.com/foodkart/foodkart/internal/adapter/payment"
)

// PaymentProviderStub simulates the payment gateway adapter.
type PaymentProviderStub struct {
	Order    *payment.GatewayOrder
	Err      error
	Valid    bool
	CreateFn func(context.Context, int64) (*payment.GatewayOrder, error)
	VerifyFn func(string, string, string) bool
	Created  []int64
	Verified [][3]string
}

// CreateOrder records the requested amount and returns the configured order.
func (s *PaymentProviderStub) CreateOrder(ctx context.Context, amount int64) (*payment.GatewayOrder, error) {
	s.Created = append(s.Created, amount)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, amount)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Order != nil {
		return s.Order, nil
	}
	return &payment.GatewayOrder{ID: "order_test", Amount: amount * 100, Currency: "INR", Status: "created"}, nil
}

// VerifySignature records the tuple and returns the configured verdict.
func (s *PaymentProviderStub) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	s.Verified = append(s.Verified, [3]string{gatewayOrderID, paymentID, signature})
	if s.VerifyFn != nil {
		return s.VerifyFn(gatewayOrderID, paymentID, signature)
	}
	return s.Valid
}

// IdentityProviderStub simulates the federated identity adapter.
type IdentityProviderStub struct {
	Identity *identity.Identity
	Err      error
	VerifyFn func(context.Context, string) (*identity.Identity, error)
	Tokens   []string
}

// Verify records the token and returns the configured identity.
func (s *IdentityProviderStub) Verify(ctx context.Context, token string) (*identity.Identity, error) {
	s.Tokens = append(s.Tokens, token)
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, token)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Identity != nil {
		return s.Identity, nil
	}
	return &identity.Identity{Email: "guest@example.com", Name: "Guest"}, nil
}

// AssistantProviderStub simulates the chat model adapter.
type AssistantProviderStub struct {
	Reply   string
	Err     error
	Prompts []string
}

// Generate records the prompt and returns the configured reply.
func (s *AssistantProviderStub) Generate(ctx context.Context, prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if s.Err != nil {
		return "", s.Err
	}
	return s.Reply, nil
}
