package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisForwarder returns a handler that publishes events as JSON to a
// Redis pub/sub channel, the bus other chat services consume from.
func NewRedisForwarder(client *redis.Client, channel string, logger *zap.Logger) EventHandler {
	return func(ctx context.Context, event Event) error {
		body, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", event.Type, err)
		}
		if err := client.Publish(ctx, channel, body).Err(); err != nil {
			logger.Warn("event publish failed",
				zap.String("channel", channel),
				zap.String("event_type", string(event.Type)),
				zap.Error(err))
			return err
		}
		return nil
	}
}
