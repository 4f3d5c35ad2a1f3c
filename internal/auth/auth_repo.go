package auth

import (
	"context"
	"errors"
	"strings"

	"go-inspecta/internal/account"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock

// Repository resolves the credentials behind a login attempt.
type Repository interface {
	FindAccount(ctx context.Context, username string) (*account.Account, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindAccount returns nil without error when no account has the username.
func (r *repository) FindAccount(ctx context.Context, username string) (*account.Account, error) {
	var a account.Account
	err := r.db.WithContext(ctx).
		Preload("Permissions").
		Where("username = ?", strings.TrimSpace(username)).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
