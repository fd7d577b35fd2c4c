package logger

import "go.uber.org/fx"

// Module provides the application logger to the fx graph.
var Module = fx.Provide(New)
