package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/pkg/logger"
)

const (
	channelPrefix = "entity_changes:"
)

// RedisPubSub fans change events out per tenant. Each process holds at most
// one Redis subscription per tenant; local listeners hang off its callback.
type RedisPubSub struct {
	client       *redis.Client
	logger       *logger.Logger
	subscribers  map[string]*redis.PubSub // Map of tenant ID to subscriber
	subscriberMu sync.RWMutex
}

func NewRedisPubSub(client *redis.Client, logger *logger.Logger) *RedisPubSub {
	return &RedisPubSub{
		client:      client,
		logger:      logger,
		subscribers: make(map[string]*redis.PubSub),
	}
}

func ChannelName(tenantID string) string {
	return channelPrefix + tenantID
}

// Publish publishes a change event to the tenant's Redis channel
func (ps *RedisPubSub) Publish(ctx context.Context, event *dto.ChangeEvent) error {
	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	channel := ChannelName(event.TenantID)
	if err := ps.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", channel, err)
	}

	return nil
}

// Subscribe starts delivering the tenant's change events to callback until ctx
// is done or Unsubscribe is called. A second call for the same tenant is a
// no-op.
func (ps *RedisPubSub) Subscribe(ctx context.Context, tenantID string, callback func(*dto.ChangeEvent)) error {
	channel := ChannelName(tenantID)

	ps.subscriberMu.Lock()
	if _, exists := ps.subscribers[tenantID]; exists {
		ps.subscriberMu.Unlock()
		ps.logger.Debug("already subscribed to tenant channel", zap.String("channel", channel))
		return nil
	}
	sub := ps.client.Subscribe(ctx, channel)
	ps.subscribers[tenantID] = sub
	ps.subscriberMu.Unlock()

	// Wait for the subscription to be confirmed so events published right
	// after Subscribe returns are not missed.
	if _, err := sub.Receive(ctx); err != nil {
		ps.drop(tenantID, sub)
		return fmt.Errorf("failed to subscribe to Redis channel %s: %w", channel, err)
	}

	go func() {
		defer func() {
			ps.logger.Debug("closing subscription for tenant channel", zap.String("channel", channel))
			ps.drop(tenantID, sub)
		}()

		ch := sub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event dto.ChangeEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					ps.logger.Errorf("Failed to unmarshal change event from channel %s: %v", channel, err)
					continue
				}
				callback(&event)

			case <-ctx.Done():
				return
			}
		}
	}()

	ps.logger.Info("subscribed to tenant channel", zap.String("channel", channel))
	return nil
}

// Unsubscribe removes subscription for a tenant
func (ps *RedisPubSub) Unsubscribe(tenantID string) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if sub, exists := ps.subscribers[tenantID]; exists {
		_ = sub.Close()
		delete(ps.subscribers, tenantID)
		ps.logger.Info("unsubscribed from tenant channel", zap.String("channel", ChannelName(tenantID)))
	}
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	for tenantID, sub := range ps.subscribers {
		_ = sub.Close()
		delete(ps.subscribers, tenantID)
	}
}

// drop forgets sub unless the tenant has already been resubscribed.
func (ps *RedisPubSub) drop(tenantID string, sub *redis.PubSub) {
	_ = sub.Close()

	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()
	if ps.subscribers[tenantID] == sub {
		delete(ps.subscribers, tenantID)
	}
}
