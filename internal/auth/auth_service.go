package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"go-inspecta/internal/access"
	accesserrors "go-inspecta/internal/access/errors"
	autherrors "go-inspecta/internal/auth/errors"
	"go-inspecta/internal/session"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Logout(ctx context.Context, sid string) error
	Me(ctx context.Context) (*access.Identity, error)
}

// TokenIssuer signs the access token handed to the client.
type TokenIssuer interface {
	Issue(sid, username, role string) (string, time.Time, error)
}

type service struct {
	repo     Repository
	sessions session.Manager
	tokens   TokenIssuer
	logger   *zap.Logger
}

func NewService(repo Repository, sessions session.Manager, tokens TokenIssuer, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, sessions: sessions, tokens: tokens, logger: l}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compareDummy burns a bcrypt comparison so unknown usernames take as long as
// wrong passwords.
func compareDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("inspecta-dummy-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

func (s *service) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)

	acc, err := s.repo.FindAccount(ctx, username)
	if err != nil {
		s.logger.Error("failed to look up account", zap.String("username", username), zap.Error(err))
		return LoginResult{}, err
	}
	if acc == nil {
		compareDummy(password)
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}
	if !acc.IsActive {
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	identity := acc.Identity()
	sid, err := s.sessions.Begin(ctx, identity)
	if err != nil {
		return LoginResult{}, err
	}

	token, expiresAt, err := s.tokens.Issue(sid, identity.Username, identity.Role.String())
	if err != nil {
		s.logger.Error("failed to issue token", zap.String("username", username), zap.Error(err))
		if endErr := s.sessions.End(ctx, sid); endErr != nil {
			s.logger.Warn("failed to discard session", zap.String("sid", sid), zap.Error(endErr))
		}
		return LoginResult{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login succeeded", zap.String("username", username), zap.String("role", identity.Role.String()))

	return LoginResult{
		AccessToken: token,
		SessionID:   sid,
		ExpiresAt:   expiresAt,
		Identity:    identity,
	}, nil
}

func (s *service) Logout(ctx context.Context, sid string) error {
	return s.sessions.End(ctx, sid)
}

func (s *service) Me(ctx context.Context) (*access.Identity, error) {
	checker := access.FromContext(ctx)
	if !checker.Authenticated() {
		return nil, accesserrors.ErrUnauthenticated
	}
	return checker.Identity(), nil
}
