package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type LifecycleEvent struct {
	Action  string
	Message string
	Meta    map[string]any
}

// LifecycleLogger records process-level events (startup, shutdown) that do
// not belong in the per-record audit table.
type LifecycleLogger interface {
	Log(ctx context.Context, event LifecycleEvent)
}

type zapLifecycleLogger struct{}

func NewZapLifecycleLogger() LifecycleLogger {
	return &zapLifecycleLogger{}
}

func (l *zapLifecycleLogger) Log(_ context.Context, event LifecycleEvent) {
	zap.L().Named("lifecycle").Info("lifecycle event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", event.Action),
		zap.String("message", event.Message),
		zap.Any("meta", event.Meta),
	)
}
