package worker

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/chat-identity/internal/events"
)

// StartEventWorker attaches the downstream forwarder and an audit logger to
// the dispatcher for every user event type.
func StartEventWorker(dispatcher events.Dispatcher, client *redis.Client, channel string, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}

	types := []events.EventType{
		events.EventAccountRegistered,
		events.EventLoginSucceeded,
	}

	audit := func(_ context.Context, event events.Event) error {
		logger.Info("user event",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.String("account_id", event.AccountID))
		return nil
	}

	for _, t := range types {
		dispatcher.Subscribe(t, audit)
		if client != nil {
			dispatcher.Subscribe(t, events.NewRedisForwarder(client, channel, logger))
		}
	}
}
