package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/foodkart/foodkart/internal/adapter/assistant"
	"github.com/foodkart/foodkart/internal/adapter/identity"
	"github.com/foodkart/foodkart/internal/adapter/payment"
	"github.com/foodkart/foodkart/internal/app"
	"github.com/foodkart/foodkart/internal/config"
	"github.com/foodkart/foodkart/internal/domain/repository"
	"github.com/foodkart/foodkart/internal/storage/postgres"
	"github.com/foodkart/foodkart/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:        ":0",
		DatabaseURI:       "postgres://stub",
		JWTSecret:         "secret",
		OrderPollInterval: time.Millisecond,
		PaymentTimeout:    time.Minute,
		WorkerPoolSize:    1,
		MaxOrdersBatch:    1,
		ShutdownTimeout:   time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	productRepo := test.NewProductRepositoryStub()
	couponRepo := test.NewCouponRepositoryStub()
	orderRepo := &test.OrderRepositoryStub{}
	gatewayStub := &test.PaymentProviderStub{Valid: true}
	assistantStub := &test.AssistantProviderStub{Reply: "hello"}
	identityStub := &test.IdentityProviderStub{}

	var facade *app.StorefrontFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.ProductRepository(productRepo)),
			fx.Replace(repository.CouponRepository(couponRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(payment.Client(gatewayStub)),
			fx.Replace(assistant.Client(assistantStub)),
			fx.Replace(identity.Client(identityStub)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected storefront facade instance")
	}
}
