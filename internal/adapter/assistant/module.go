package assistant

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/foodkart/foodkart/internal/config"
)

// Module exposes the assistant client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) Client {
	return NewHTTPClient(p.Config.AssistantBaseURL, p.Config.AssistantAPIKey, p.Config.AssistantModel, p.Logger)
}
