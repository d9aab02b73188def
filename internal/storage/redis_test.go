package storage

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pkrhistory/internal/record"
)

func TestRedisStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mr := miniredis.RunT(t)

	store, err := NewRedisStore("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = store.GetText(ctx, historyKey)
	require.ErrorIs(t, err, ErrNotFound)

	older := "histories/split/2023/01/03/A(1)/1-1-1.txt"
	require.NoError(t, store.PutText(ctx, historyKey, "Winamax Poker - ..."))
	require.NoError(t, store.PutText(ctx, older, "older"))
	require.NoError(t, store.PutText(ctx, "summaries/2023/01/04/GUERILLA(608341002).txt", "summary"))

	text, err := store.GetText(ctx, historyKey)
	require.NoError(t, err)
	assert.Equal(t, "Winamax Poker - ...", text)

	keys, err := store.List(ctx, SplitPrefix)
	require.NoError(t, err)
	assert.Equal(t, []string{older, historyKey}, keys)

	dest := DestinationKey(historyKey)
	exists, err := store.Exists(ctx, dest)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.PutRecord(ctx, dest, sampleHand()))
	exists, err = store.Exists(ctx, dest)
	require.NoError(t, err)
	assert.True(t, exists)

	stored, err := mr.Get(dest)
	require.NoError(t, err)
	var back record.Hand
	require.NoError(t, json.Unmarshal([]byte(stored), &back))
	assert.Equal(t, sampleHand(), &back)

	assert.Error(t, store.PutRecord(ctx, dest, nil))
}

func TestRedisStoreFromClient(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mr := miniredis.RunT(t)

	store := NewRedisStoreFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { store.Close() })

	require.NoError(t, mr.Set(historyKey, "raw"))
	text, err := store.GetText(ctx, historyKey)
	require.NoError(t, err)
	assert.Equal(t, "raw", text)

	keys, err := store.List(ctx, SummaryPrefix)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestNewRedisStoreErrors(t *testing.T) {
	t.Parallel()

	_, err := NewRedisStore("http://localhost:6379")
	assert.ErrorContains(t, err, "parse redis url")

	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	addr := mr.Addr()
	mr.Close()

	_, err = NewRedisStore("redis://" + addr)
	assert.ErrorContains(t, err, "ping redis")
}

func TestOpenRedis(t *testing.T) {
	t.Parallel()
	mr := miniredis.RunT(t)

	backend, err := Open(context.Background(), Options{Backend: BackendRedis, URL: "redis://" + mr.Addr()}, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, backend.Source)
	assert.Implements(t, (*Checker)(nil), backend.Sink)
	assert.Implements(t, (*TextWriter)(nil), backend.Sink)
	require.NoError(t, backend.Close())
}
