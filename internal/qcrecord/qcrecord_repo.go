package qcrecord

import (
	"context"
	"database/sql"
	"time"

	"go-inspecta/internal/plant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Filter narrows a record listing. AllowedPlants always applies; Plant, Line
// and the date bounds apply when set.
type Filter struct {
	Type          Type
	AllowedPlants []string
	Plant         string
	Line          int
	From          *time.Time
	To            *time.Time
	Offset        int
	Limit         int
}

//go:generate mockgen -source=qcrecord_repo.go -destination=mock/qcrecord_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Record) error
	FindByID(ctx context.Context, id uuid.UUID) (*Record, error)
	FindPage(ctx context.Context, f Filter) ([]Record, int64, error)
	Update(ctx context.Context, r *Record) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{SkipDefaultTransaction: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	var rec Record
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func filterScope(f Filter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("type = ?", string(f.Type)).
			Scopes(plant.AllowedScope(f.AllowedPlants), plant.Scope(f.Plant))
		if f.Line > 0 {
			db = db.Where("line = ?", f.Line)
		}
		if f.From != nil {
			db = db.Where("inspection_date >= ?", *f.From)
		}
		if f.To != nil {
			db = db.Where("inspection_date <= ?", *f.To)
		}
		return db
	}
}

func (r *repository) FindPage(ctx context.Context, f Filter) ([]Record, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Record{}).Scopes(filterScope(f)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	records := []Record{}
	if total == 0 {
		return records, 0, nil
	}
	err := r.db.WithContext(ctx).
		Scopes(filterScope(f)).
		Order("inspection_date DESC, number DESC").
		Offset(f.Offset).
		Limit(f.Limit).
		Find(&records).Error
	return records, total, err
}

func (r *repository) Update(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).
		Model(rec).
		Select("result", "notes", "payload", "updated_at").
		Updates(rec).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Record{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
