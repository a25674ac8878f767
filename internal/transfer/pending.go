package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PendingTransfer marks a transfer as begun but not yet confirmed. Its
// presence in the store is the sole authority for that state: once the TTL
// reaps it, the transfer is indistinguishable from one that never existed.
type PendingTransfer struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
}

// ErrPendingNotFound is returned when no live pending transfer exists for an id.
var ErrPendingNotFound = errors.New("pending transfer not found")

// PendingStore holds transfer intents awaiting confirmation.
type PendingStore interface {
	Put(ctx context.Context, id string, pt *PendingTransfer, ttl time.Duration) error
	Get(ctx context.Context, id string) (*PendingTransfer, error)
	Delete(ctx context.Context, id string) error
}

// RedisPendingStore implements PendingStore on Redis with per-key TTL expiry.
type RedisPendingStore struct {
	rdb *redis.Client
}

// NewRedisPendingStore creates a RedisPendingStore.
func NewRedisPendingStore(rdb *redis.Client) *RedisPendingStore {
	return &RedisPendingStore{rdb: rdb}
}

// Put stores the pending transfer under its id with the given TTL.
func (s *RedisPendingStore) Put(ctx context.Context, id string, pt *PendingTransfer, ttl time.Duration) error {
	b, err := json.Marshal(pt)
	if err != nil {
		return fmt.Errorf("encode pending transfer: %w", err)
	}
	if err := s.rdb.Set(ctx, pendingKey(id), b, ttl).Err(); err != nil {
		return fmt.Errorf("store pending transfer: %w", err)
	}
	return nil
}

// Get fetches the pending transfer for id, or ErrPendingNotFound if the key
// is absent or already expired.
func (s *RedisPendingStore) Get(ctx context.Context, id string) (*PendingTransfer, error) {
	v, err := s.rdb.Get(ctx, pendingKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrPendingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get pending transfer: %w", err)
	}

	pt := &PendingTransfer{}
	if err := json.Unmarshal([]byte(v), pt); err != nil {
		return nil, fmt.Errorf("decode pending transfer: %w", err)
	}
	return pt, nil
}

// Delete removes the pending transfer for id. Deleting an absent key is not an error.
func (s *RedisPendingStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, pendingKey(id)).Err(); err != nil {
		return fmt.Errorf("delete pending transfer: %w", err)
	}
	return nil
}

func pendingKey(id string) string {
	return "pending:" + id
}
