package fabric

import (
	"context"
	"testing"
	"time"

	"beacon/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receivePayload(t *testing.T, sub service.Subscription) []byte {
	t.Helper()

	select {
	case payload := <-sub.C():
		return payload
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for payload")
		return nil
	}
}

func TestMemoryFabric_PublishReachesAllSubscribers(t *testing.T) {
	fabric := NewMemoryFabric(8)
	defer fabric.Close()

	ctx := context.Background()
	topic := service.NotificationTopic(uuid.New())

	first, err := fabric.Subscribe(ctx, topic)
	require.NoError(t, err)
	second, err := fabric.Subscribe(ctx, topic)
	require.NoError(t, err)

	require.NoError(t, fabric.Publish(ctx, topic, []byte("hello")))

	assert.Equal(t, []byte("hello"), receivePayload(t, first))
	assert.Equal(t, []byte("hello"), receivePayload(t, second))
}

func TestMemoryFabric_TopicsAreIsolated(t *testing.T) {
	fabric := NewMemoryFabric(8)
	defer fabric.Close()

	ctx := context.Background()
	sub, err := fabric.Subscribe(ctx, "status.a")
	require.NoError(t, err)

	require.NoError(t, fabric.Publish(ctx, "status.b", []byte("other")))
	require.NoError(t, fabric.Publish(ctx, "status.a", []byte("mine")))

	assert.Equal(t, []byte("mine"), receivePayload(t, sub))
}

func TestMemoryFabric_PublishWithoutSubscriberIsDropped(t *testing.T) {
	fabric := NewMemoryFabric(8)
	defer fabric.Close()

	// Nothing to assert beyond "no error, no delivery": a topic with no
	// subscriber silently discards the payload.
	err := fabric.Publish(context.Background(), "notify.nobody", []byte("lost"))
	require.NoError(t, err)
}

func TestMemoryFabric_FullSubscriberDropsNewest(t *testing.T) {
	fabric := NewMemoryFabric(1)
	defer fabric.Close()

	ctx := context.Background()
	sub, err := fabric.Subscribe(ctx, "topic")
	require.NoError(t, err)

	require.NoError(t, fabric.Publish(ctx, "topic", []byte("first")))
	require.NoError(t, fabric.Publish(ctx, "topic", []byte("overflow")))

	assert.Equal(t, []byte("first"), receivePayload(t, sub))

	select {
	case payload := <-sub.C():
		t.Fatalf("expected overflow payload to be dropped, got %q", payload)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMemorySubscription_CloseEndsChannel(t *testing.T) {
	fabric := NewMemoryFabric(8)
	defer fabric.Close()

	ctx := context.Background()
	sub, err := fabric.Subscribe(ctx, "topic")
	require.NoError(t, err)

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close()) // idempotent

	_, open := <-sub.C()
	assert.False(t, open)

	// Publishing after the only subscriber left is still fine.
	require.NoError(t, fabric.Publish(ctx, "topic", []byte("late")))
}

func TestMemoryFabric_CloseRejectsFurtherUse(t *testing.T) {
	fabric := NewMemoryFabric(8)

	ctx := context.Background()
	sub, err := fabric.Subscribe(ctx, "topic")
	require.NoError(t, err)

	require.NoError(t, fabric.Close())

	_, open := <-sub.C()
	assert.False(t, open)

	assert.Error(t, fabric.Publish(ctx, "topic", []byte("x")))
	_, err = fabric.Subscribe(ctx, "topic")
	assert.Error(t, err)
}
