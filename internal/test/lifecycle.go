package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects fx lifecycle hooks so tests can run them directly.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append stores the hook for later invocation.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals tests when a shutdown is requested.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown sends a non-blocking notification on Called.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
