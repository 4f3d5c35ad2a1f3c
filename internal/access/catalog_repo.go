package access

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=catalog_repo.go -destination=mock/catalog_repo_mock.go -package=mock
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]Permission, error)
	Upsert(ctx context.Context, perms []Permission) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) FindAll(ctx context.Context) ([]Permission, error) {
	var perms []Permission
	err := r.db.WithContext(ctx).
		Order("category, tag").
		Find(&perms).Error
	return perms, err
}

func (r *catalogRepository) Upsert(ctx context.Context, perms []Permission) error {
	if len(perms) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tag"}},
			DoUpdates: clause.AssignmentColumns([]string{"label", "category"}),
		}).
		Create(&perms).Error
}
