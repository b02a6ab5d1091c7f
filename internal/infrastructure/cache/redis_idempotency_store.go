package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sangkips/vendor-ledger-api/internal/config"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	domainRepo "github.com/sangkips/vendor-ledger-api/internal/domain/repository"
)

const defaultKeyPrefix = "ledger:idempotency:"

// RedisIdempotencyStore keeps replayable responses in Redis so several API
// instances share them. Keys expire on their own, so DeleteExpired is a no-op.
type RedisIdempotencyStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisIdempotencyStore connects to Redis and verifies the connection.
func NewRedisIdempotencyStore(cfg config.RedisConfig) (*RedisIdempotencyStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisIdempotencyStoreWithClient(client, ""), nil
}

// NewRedisIdempotencyStoreWithClient wraps an existing client.
func NewRedisIdempotencyStoreWithClient(client *redis.Client, keyPrefix string) *RedisIdempotencyStore {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisIdempotencyStore{client: client, keyPrefix: keyPrefix}
}

func (s *RedisIdempotencyStore) key(key string, operatorID uuid.UUID) string {
	return s.keyPrefix + operatorID.String() + ":" + key
}

func (s *RedisIdempotencyStore) GetByKey(ctx context.Context, key string, operatorID uuid.UUID) (*entity.IdempotencyKey, error) {
	raw, err := s.client.Get(ctx, s.key(key, operatorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read idempotency key: %w", err)
	}

	var ikey entity.IdempotencyKey
	if err := json.Unmarshal(raw, &ikey); err != nil {
		return nil, fmt.Errorf("failed to decode idempotency key: %w", err)
	}
	return &ikey, nil
}

func (s *RedisIdempotencyStore) encode(ikey *entity.IdempotencyKey) ([]byte, time.Duration, error) {
	ttl := time.Until(ikey.ExpiresAt)
	if ttl <= 0 {
		return nil, 0, nil
	}
	if ikey.ID == uuid.Nil {
		ikey.ID = uuid.New()
	}
	if ikey.CreatedAt.IsZero() {
		ikey.CreatedAt = time.Now()
	}
	raw, err := json.Marshal(ikey)
	return raw, ttl, err
}

// Reserve stores the pending key with SETNX until its ExpiresAt, so a stale
// reservation expires on its own.
func (s *RedisIdempotencyStore) Reserve(ctx context.Context, ikey *entity.IdempotencyKey) (bool, error) {
	raw, ttl, err := s.encode(ikey)
	if err != nil || ttl <= 0 {
		return false, err
	}
	ok, err := s.client.SetNX(ctx, s.key(ikey.Key, ikey.OperatorID), raw, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to reserve idempotency key: %w", err)
	}
	return ok, nil
}

// Complete overwrites the reservation with the response. A reservation that
// already expired is not recreated.
func (s *RedisIdempotencyStore) Complete(ctx context.Context, ikey *entity.IdempotencyKey) error {
	raw, ttl, err := s.encode(ikey)
	if err != nil || ttl <= 0 {
		return err
	}
	if err := s.client.SetXX(ctx, s.key(ikey.Key, ikey.OperatorID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store idempotency key: %w", err)
	}
	return nil
}

func (s *RedisIdempotencyStore) Release(ctx context.Context, key string, operatorID uuid.UUID) error {
	if err := s.client.Del(ctx, s.key(key, operatorID)).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}
	return nil
}

func (s *RedisIdempotencyStore) DeleteExpired(ctx context.Context) error {
	return nil
}

// Close closes the Redis client
func (s *RedisIdempotencyStore) Close() error {
	return s.client.Close()
}

var _ domainRepo.IdempotencyRepository = (*RedisIdempotencyStore)(nil)
