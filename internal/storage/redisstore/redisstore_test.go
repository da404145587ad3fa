package redisstore

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/delivery-orchestrator/internal/model"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return mr, rdb
}

func TestPresenceStore_ConnectSetsBothKeysWithTTL(t *testing.T) {
	mr, rdb := setupRedis(t)
	store := NewPresenceStore(rdb)
	ctx := context.Background()

	n, err := store.Connect(ctx, "U1", 35*time.Second, 2*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = store.Connect(ctx, "U1", 35*time.Second, 2*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	assert.Equal(t, 35*time.Second, mr.TTL(aliveKey("U1")))
	assert.Equal(t, 2*time.Hour, mr.TTL(sessionKey("U1")))

	sessions, alive, err := store.Snapshot(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), sessions)
	assert.True(t, alive)
}

func TestPresenceStore_DisconnectDeletesKeysAtZero(t *testing.T) {
	mr, rdb := setupRedis(t)
	store := NewPresenceStore(rdb)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := store.Connect(ctx, "U1", 35*time.Second, 2*time.Hour)
		require.NoError(t, err)
	}

	n, err := store.Disconnect(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.True(t, mr.Exists(sessionKey("U1")))

	n, err = store.Disconnect(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.False(t, mr.Exists(sessionKey("U1")))
	assert.False(t, mr.Exists(aliveKey("U1")))
}

func TestPresenceStore_DisconnectWithoutSession(t *testing.T) {
	mr, rdb := setupRedis(t)
	store := NewPresenceStore(rdb)

	n, err := store.Disconnect(context.Background(), "U1")
	require.NoError(t, err)
	assert.LessOrEqual(t, n, int64(0))
	assert.False(t, mr.Exists(sessionKey("U1")))
}

func TestPresenceStore_SnapshotEmpty(t *testing.T) {
	_, rdb := setupRedis(t)
	store := NewPresenceStore(rdb)

	sessions, alive, err := store.Snapshot(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Zero(t, sessions)
	assert.False(t, alive)
}

func TestPresenceStore_ReapOrphanOnlyAfterLivenessExpired(t *testing.T) {
	mr, rdb := setupRedis(t)
	store := NewPresenceStore(rdb)
	ctx := context.Background()

	_, err := store.Connect(ctx, "U1", 35*time.Second, 2*time.Hour)
	require.NoError(t, err)

	reaped, err := store.ReapOrphan(ctx, "U1")
	require.NoError(t, err)
	assert.False(t, reaped)
	assert.True(t, mr.Exists(sessionKey("U1")))

	mr.FastForward(36 * time.Second)

	sessions, alive, err := store.Snapshot(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), sessions)
	assert.False(t, alive)

	reaped, err = store.ReapOrphan(ctx, "U1")
	require.NoError(t, err)
	assert.True(t, reaped)
	assert.False(t, mr.Exists(sessionKey("U1")))
}

func TestPresenceStore_RefreshExtendsExistingSessionOnly(t *testing.T) {
	mr, rdb := setupRedis(t)
	store := NewPresenceStore(rdb)
	ctx := context.Background()

	require.NoError(t, store.Refresh(ctx, "U2", 35*time.Second, 2*time.Hour))
	assert.True(t, mr.Exists(aliveKey("U2")))
	assert.False(t, mr.Exists(sessionKey("U2")))

	_, err := store.Connect(ctx, "U1", 35*time.Second, 2*time.Hour)
	require.NoError(t, err)
	mr.FastForward(time.Hour)

	require.NoError(t, store.Refresh(ctx, "U1", 35*time.Second, 2*time.Hour))
	assert.Equal(t, 2*time.Hour, mr.TTL(sessionKey("U1")))
}

func TestPresenceStore_CountAlive(t *testing.T) {
	_, rdb := setupRedis(t)
	store := NewPresenceStore(rdb)
	ctx := context.Background()

	for _, u := range []string{"U1", "U2", "U3"} {
		require.NoError(t, store.Refresh(ctx, u, time.Minute, time.Hour))
	}
	require.NoError(t, rdb.Set(ctx, "unrelated", 1, 0).Err())

	n, err := store.CountAlive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestLedgerStore_PutMergesAndExpires(t *testing.T) {
	mr, rdb := setupRedis(t)
	store := NewLedgerStore(rdb)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "evt-1", map[string]string{"status": "dispatched", "channel": "push"}, 10*time.Minute))
	require.NoError(t, store.Put(ctx, "evt-1", map[string]string{"status": "processed"}, 10*time.Minute))

	fields, err := store.Get(ctx, "evt-1")
	require.NoError(t, err)
	assert.Equal(t, "processed", fields["status"])
	assert.Equal(t, "push", fields["channel"])
	assert.Equal(t, 10*time.Minute, mr.TTL(ledgerKeyPrefix+"evt-1"))

	mr.FastForward(11 * time.Minute)

	fields, err = store.Get(ctx, "evt-1")
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestPublisher_EmitReportsReceivers(t *testing.T) {
	_, rdb := setupRedis(t)
	pub := NewPublisher(rdb)
	ctx := context.Background()

	delivered, err := pub.EmitNotification(ctx, "U1", model.LiveMessage{EventID: "evt-1"})
	require.NoError(t, err)
	assert.False(t, delivered)

	sub := rdb.Subscribe(ctx, LiveChannel("U1"))
	t.Cleanup(func() { _ = sub.Close() })
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	delivered, err = pub.EmitChatUpdate(ctx, "U1", model.LiveMessage{EventID: "evt-2", Type: model.TypeChatMessage})
	require.NoError(t, err)
	assert.True(t, delivered)

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)

	var got model.LiveMessage
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
	assert.Equal(t, model.LiveEventChatUpdate, got.Event)
	assert.Equal(t, "evt-2", got.EventID)
}

func TestPublisher_PublishPresence(t *testing.T) {
	_, rdb := setupRedis(t)
	pub := NewPublisher(rdb)
	ctx := context.Background()

	sub := rdb.Subscribe(ctx, PresenceChannel)
	t.Cleanup(func() { _ = sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	at := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	require.NoError(t, pub.PublishPresence(ctx, model.PresenceEvent{User: "U1", LastSeen: at}))

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)

	var got model.PresenceEvent
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
	assert.Equal(t, "U1", got.User)
	assert.False(t, got.Online)
	assert.True(t, at.Equal(got.LastSeen))
}
