// Package realtime delivers named events to session-scoped or broadcast
// channels over redis pub/sub. Delivery is fire-and-forget: publish failures
// are logged, never surfaced to the request path.
package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	broadcastChannel     = "events:broadcast"
	sessionChannelPrefix = "events:session:"
)

// Event is the envelope every published payload travels in.
type Event struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	SessionID string      `json:"sessionId,omitempty"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Publisher delivers events to connected clients. An empty sessionID
// broadcasts to every subscriber.
type Publisher interface {
	Publish(ctx context.Context, name string, payload interface{}, sessionID string)
}

// RedisPublisher implements Publisher over redis pub/sub.
type RedisPublisher struct {
	Client *redis.Client
	Logger *zap.Logger
}

func NewRedisPublisher(client *redis.Client, logger *zap.Logger) *RedisPublisher {
	return &RedisPublisher{Client: client, Logger: logger}
}

func (p *RedisPublisher) Publish(ctx context.Context, name string, payload interface{}, sessionID string) {
	event := Event{
		ID:        uuid.New().String(),
		Name:      name,
		SessionID: sessionID,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.Logger.Error("failed to marshal event", zap.String("event", name), zap.Error(err))
		return
	}

	channel := broadcastChannel
	if sessionID != "" {
		channel = sessionChannelPrefix + sessionID
	}

	if err := p.Client.Publish(ctx, channel, data).Err(); err != nil {
		p.Logger.Warn("failed to publish event",
			zap.String("event", name),
			zap.String("channel", channel),
			zap.Error(err),
		)
		return
	}

	p.Logger.Debug("event published", zap.String("event", name), zap.String("channel", channel))
}
