package session

import (
	"context"
	"time"

	"go-inspecta/internal/access"
)

// Selection is the client-local plant/line choice made after login.
type Selection struct {
	Plant string `json:"plant"`
	Line  int    `json:"line,omitempty"`
}

// Store persists session snapshots. Load methods return (nil, nil) when the
// key is absent or expired.
//
//go:generate mockgen -source=session_store.go -destination=mock/session_store_mock.go -package=mock
type Store interface {
	SaveIdentity(ctx context.Context, sid string, identity *access.Identity, ttl time.Duration) error
	LoadIdentity(ctx context.Context, sid string) (*access.Identity, error)
	SaveSelection(ctx context.Context, sid string, sel Selection, ttl time.Duration) error
	LoadSelection(ctx context.Context, sid string) (*Selection, error)
	// Clear drops the identity snapshot and every piece of per-session state.
	Clear(ctx context.Context, sid string) error
}

const keyPrefix = "session:"

func IdentityKey(sid string) string {
	return keyPrefix + sid + ":identity"
}

func SelectionKey(sid string) string {
	return keyPrefix + sid + ":selection"
}
