package session

import (
	"context"
	"encoding/json"
	"time"

	"go-inspecta/internal/access"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps snapshots in process. Values are stored as JSON so a
// loaded identity never aliases the saved one.
type MemoryStore struct {
	c *cache.Cache
}

func NewMemoryStore(defaultTTL time.Duration) *MemoryStore {
	return &MemoryStore{c: cache.New(defaultTTL, 10*time.Minute)}
}

func (s *MemoryStore) SaveIdentity(_ context.Context, sid string, identity *access.Identity, ttl time.Duration) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	s.c.Set(IdentityKey(sid), data, ttl)
	return nil
}

func (s *MemoryStore) LoadIdentity(_ context.Context, sid string) (*access.Identity, error) {
	v, found := s.c.Get(IdentityKey(sid))
	if !found {
		return nil, nil
	}
	var identity access.Identity
	if err := json.Unmarshal(v.([]byte), &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (s *MemoryStore) SaveSelection(_ context.Context, sid string, sel Selection, ttl time.Duration) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return err
	}
	s.c.Set(SelectionKey(sid), data, ttl)
	return nil
}

func (s *MemoryStore) LoadSelection(_ context.Context, sid string) (*Selection, error) {
	v, found := s.c.Get(SelectionKey(sid))
	if !found {
		return nil, nil
	}
	var sel Selection
	if err := json.Unmarshal(v.([]byte), &sel); err != nil {
		return nil, err
	}
	return &sel, nil
}

func (s *MemoryStore) Clear(_ context.Context, sid string) error {
	s.c.Delete(IdentityKey(sid))
	s.c.Delete(SelectionKey(sid))
	return nil
}
