package session

import (
	"context"
	"strings"
	"time"

	"go-inspecta/internal/access"
	accesserrors "go-inspecta/internal/access/errors"
	sessionerrors "go-inspecta/internal/session/errors"
	"go-inspecta/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=session_manager.go -destination=mock/session_manager_mock.go -package=mock
type Manager interface {
	Begin(ctx context.Context, identity access.Identity) (string, error)
	Current(ctx context.Context, sid string) (*access.Identity, error)
	End(ctx context.Context, sid string) error
	Select(ctx context.Context, sid string, sel Selection) (Selection, error)
	Selection(ctx context.Context, sid string) (*Selection, error)
}

type manager struct {
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

func NewManager(store Store, ttl time.Duration, logger ...*zap.Logger) Manager {
	l := zap.L().Named("session.manager")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session.manager")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &manager{store: store, ttl: ttl, logger: l}
}

func (m *manager) Begin(ctx context.Context, identity access.Identity) (string, error) {
	if !identity.IsActive {
		return "", sessionerrors.ErrInactiveIdentity
	}

	sid := uuid.NewString()
	if err := m.store.SaveIdentity(ctx, sid, identity.Clone(), m.ttl); err != nil {
		m.logger.Error("save session identity failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("username", identity.Username),
			zap.Error(err),
		)
		return "", err
	}

	m.logger.Info("session started",
		zap.String("session_id", sid),
		zap.String("username", identity.Username),
	)
	return sid, nil
}

// Current prefers the identity already attached to ctx and falls back to the
// persisted snapshot. The snapshot is not revalidated against accounts.
func (m *manager) Current(ctx context.Context, sid string) (*access.Identity, error) {
	if identity := access.IdentityFromContext(ctx); identity != nil {
		return identity, nil
	}
	if sid == "" {
		return nil, nil
	}
	return m.store.LoadIdentity(ctx, sid)
}

func (m *manager) End(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	if err := m.store.Clear(ctx, sid); err != nil {
		m.logger.Error("clear session failed", zap.String("session_id", sid), zap.Error(err))
		return err
	}
	m.logger.Info("session ended", zap.String("session_id", sid))
	return nil
}

func (m *manager) Select(ctx context.Context, sid string, sel Selection) (Selection, error) {
	sel.Plant = strings.TrimSpace(sel.Plant)
	if sel.Plant == "" {
		return Selection{}, sessionerrors.ErrPlantRequired
	}

	identity, err := m.Current(ctx, sid)
	if err != nil {
		return Selection{}, err
	}
	if identity == nil {
		return Selection{}, sessionerrors.ErrSessionNotFound
	}
	if !access.NewChecker(identity).HasPlantAccess(sel.Plant) {
		m.logger.Warn("plant selection denied",
			zap.String("username", identity.Username),
			zap.String("plant", sel.Plant),
		)
		return Selection{}, accesserrors.ErrPlantDenied
	}

	if err := m.store.SaveSelection(ctx, sid, sel, m.ttl); err != nil {
		m.logger.Error("save selection failed", zap.String("session_id", sid), zap.Error(err))
		return Selection{}, err
	}
	return sel, nil
}

func (m *manager) Selection(ctx context.Context, sid string) (*Selection, error) {
	if sid == "" {
		return nil, nil
	}
	return m.store.LoadSelection(ctx, sid)
}
