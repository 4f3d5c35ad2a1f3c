package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-inspecta/internal/access"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) SaveIdentity(ctx context.Context, sid string, identity *access.Identity, ttl time.Duration) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, IdentityKey(sid), data, ttl).Err()
}

func (s *RedisStore) LoadIdentity(ctx context.Context, sid string) (*access.Identity, error) {
	raw, err := s.rdb.Get(ctx, IdentityKey(sid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var identity access.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (s *RedisStore) SaveSelection(ctx context.Context, sid string, sel Selection, ttl time.Duration) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, SelectionKey(sid), data, ttl).Err()
}

func (s *RedisStore) LoadSelection(ctx context.Context, sid string) (*Selection, error) {
	raw, err := s.rdb.Get(ctx, SelectionKey(sid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sel Selection
	if err := json.Unmarshal(raw, &sel); err != nil {
		return nil, err
	}
	return &sel, nil
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, IdentityKey(sid), SelectionKey(sid)).Err()
}
