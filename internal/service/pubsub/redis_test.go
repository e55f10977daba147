package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/pkg/logger"
)

// newUnreachablePubSub points at a port nothing listens on.
func newUnreachablePubSub(t *testing.T) *RedisPubSub {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisPubSub(client, logger.NewNop())
}

func TestChannelName(t *testing.T) {
	assert.Equal(t, "entity_changes:acme", ChannelName("acme"))
}

func TestPublish_ReportsChannelOnFailure(t *testing.T) {
	// Arrange
	ps := newUnreachablePubSub(t)
	tenantID := uuid.New()
	event := dto.NewChangeEvent(tenantID, "customer", "created", uuid.New(), nil)

	// Act
	err := ps.Publish(context.Background(), event)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), ChannelName(tenantID.String()))
}

func TestSubscribe_FailureLeavesNoSubscription(t *testing.T) {
	// Arrange
	ps := newUnreachablePubSub(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Act
	err := ps.Subscribe(ctx, "tenant-a", func(*dto.ChangeEvent) {})

	// Assert
	require.Error(t, err)
	ps.subscriberMu.RLock()
	defer ps.subscriberMu.RUnlock()
	assert.Empty(t, ps.subscribers)
}

func TestUnsubscribe_UnknownTenantIsNoop(t *testing.T) {
	ps := newUnreachablePubSub(t)

	assert.NotPanics(t, func() {
		ps.Unsubscribe("missing")
		ps.Close()
	})
}
