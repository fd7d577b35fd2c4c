package di

import (
	"go.uber.org/fx"

	"github.com/foodkart/foodkart/internal/adapter/assistant"
	"github.com/foodkart/foodkart/internal/adapter/identity"
	"github.com/foodkart/foodkart/internal/adapter/payment"
	"github.com/foodkart/foodkart/internal/app"
	"github.com/foodkart/foodkart/internal/config"
	"github.com/foodkart/foodkart/internal/logger"
	"github.com/foodkart/foodkart/internal/pkg/auth"
	"github.com/foodkart/foodkart/internal/server/http/handlers"
	"github.com/foodkart/foodkart/internal/server/http/router"
	"github.com/foodkart/foodkart/internal/storage/postgres"
	"github.com/foodkart/foodkart/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		payment.Module,
		assistant.Module,
		identity.Module,
		usecase.Module,
		fx.Provide(func(client payment.Client) app.PaymentProvider { return client }),
		fx.Provide(func(client assistant.Client) app.AssistantProvider { return client }),
		fx.Provide(func(client identity.Client) app.IdentityProvider { return client }),
		fx.Provide(func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
