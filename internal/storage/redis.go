package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lox/pkrhistory/internal/record"
)

const redisScanCount = 500

// RedisStore keeps texts and records as plain string values keyed by their
// storage key.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the Redis server at redisURL
// (redis://host:port/db) and checks it responds.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) GetText(ctx context.Context, key string) (string, error) {
	text, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return text, nil
}

// List scans for keys starting with prefix.
func (s *RedisStore) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, prefix+"*", redisScanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", prefix, err)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *RedisStore) PutText(ctx context.Context, key, text string) error {
	return s.client.Set(ctx, key, text, 0).Err()
}

func (s *RedisStore) PutRecord(ctx context.Context, key string, hand *record.Hand) error {
	data, err := encodeRecord(hand)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, 0).Err()
}

func (s *RedisStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", key, err)
	}
	return n > 0, nil
}
