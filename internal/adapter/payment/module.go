package payment

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/foodkart/foodkart/internal/config"
)

// Module exposes the payment gateway client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) Client {
	return NewHTTPClient(p.Config.GatewayBaseURL, p.Config.GatewayKeyID, p.Config.GatewayKeySecret, p.Logger)
}
