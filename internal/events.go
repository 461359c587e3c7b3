package internal

import (
	"context"
	"encoding/json"
	"time"

	"virtual-product-studio/api/pkg/util"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var CHANNEL_SESSION_EVENTS = "STUDIO_SESSION_EVENTS"

type SessionEventType string

const (
	EventSessionCreated SessionEventType = "session.created"
	EventSessionDeleted SessionEventType = "session.deleted"

	EventCartUpdated SessionEventType = "cart.updated"
	EventCartCleared SessionEventType = "cart.cleared"

	EventWishlistUpdated SessionEventType = "wishlist.updated"
	EventCompareUpdated  SessionEventType = "compare.updated"

	EventOrderPlaced   SessionEventType = "order.placed"
	EventOrdersCleared SessionEventType = "orders.cleared"
)

type SessionEvent struct {
	Type      SessionEventType `json:"type"`
	SessionId string           `json:"sessionId"`
	Payload   string           `json:"payload"`
	Timestamp int64            `json:"timestamp"`
}

// EventPublisher announces session changes to other processes.
type EventPublisher interface {
	Publish(ctx context.Context, eventType SessionEventType, sessionID, payload string) error
}

func newSessionEvent(eventType SessionEventType, sessionID, payload string) SessionEvent {
	return SessionEvent{
		Type:      eventType,
		SessionId: sessionID,
		Payload:   payload,
		Timestamp: time.Now().Unix(),
	}
}

// RedisPublisher publishes session events to a Redis pub/sub channel as JSON.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client, channel: CHANNEL_SESSION_EVENTS}
}

func (p *RedisPublisher) Publish(ctx context.Context, eventType SessionEventType, sessionID, payload string) error {
	messageJSON, err := json.Marshal(newSessionEvent(eventType, sessionID, payload))
	if err != nil {
		return errors.Wrap(err, "failed to marshal session event")
	}

	if err := p.client.Publish(ctx, p.channel, string(messageJSON)).Err(); err != nil {
		return errors.Wrap(err, "failed to publish session event")
	}

	util.LogDebug("published session event", zap.ByteString("event", messageJSON))
	return nil
}

// NopPublisher drops every event. It is used when no Redis is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, SessionEventType, string, string) error {
	return nil
}
