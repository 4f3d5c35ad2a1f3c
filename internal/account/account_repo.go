package account

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=account_repo.go -destination=mock/account_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Account) error
	FindAll(ctx context.Context) ([]Account, error)
	FindByUsername(ctx context.Context, username string) (*Account, error)
	ExistingUsernames(ctx context.Context, usernames []string) ([]string, error)
	Update(ctx context.Context, a *Account) error
	ReplacePermissions(ctx context.Context, accountID uuid.UUID, tags []string) error
	Delete(ctx context.Context, accountID uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx routes every statement through tx so the caller's outbox write
// commits together with the account row.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{SkipDefaultTransaction: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Account) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	perms := a.Permissions

	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
	if err != nil {
		return err
	}
	if len(perms) == 0 {
		return nil
	}
	for i := range perms {
		perms[i].AccountID = a.ID
	}
	return r.db.WithContext(ctx).Create(&perms).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Account, error) {
	var accounts []Account
	err := r.db.WithContext(ctx).
		Preload("Permissions").
		Order("username ASC").
		Find(&accounts).Error
	return accounts, err
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Account, error) {
	var a Account
	err := r.db.WithContext(ctx).
		Preload("Permissions").
		First(&a, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) ExistingUsernames(ctx context.Context, usernames []string) ([]string, error) {
	existing := []string{}
	if len(usernames) == 0 {
		return existing, nil
	}
	err := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("username IN ?", usernames).
		Order("username ASC").
		Pluck("username", &existing).Error
	return existing, err
}

func (r *repository) Update(ctx context.Context, a *Account) error {
	return r.db.WithContext(ctx).
		Model(a).
		Omit(clause.Associations).
		Select("full_name", "password_hash", "role", "is_active", "allowed_menus", "allowed_plants", "updated_at").
		Updates(a).Error
}

func (r *repository) ReplacePermissions(ctx context.Context, accountID uuid.UUID, tags []string) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("account_id = ?", accountID).Delete(&AccountPermission{}).Error; err != nil {
		return err
	}
	if len(tags) == 0 {
		return nil
	}
	rows := permissionRows(accountID, tags)
	return db.Create(&rows).Error
}

func (r *repository) Delete(ctx context.Context, accountID uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("account_id = ?", accountID).Delete(&AccountPermission{}).Error; err != nil {
		return err
	}
	res := db.Delete(&Account{}, "id = ?", accountID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Account{}).Count(&n).Error
	return n, err
}
