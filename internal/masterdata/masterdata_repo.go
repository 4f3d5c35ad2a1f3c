package masterdata

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=masterdata_repo.go -destination=mock/masterdata_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	FindAreas(ctx context.Context) ([]Area, error)
	FindAreaByID(ctx context.Context, id uuid.UUID) (*Area, error)
	CreateArea(ctx context.Context, area *Area) error
	UpdateArea(ctx context.Context, area *Area) error
	DeleteArea(ctx context.Context, id uuid.UUID) error
	CountBagianInArea(ctx context.Context, areaID uuid.UUID) (int64, error)

	FindBagian(ctx context.Context) ([]Bagian, error)
	FindBagianByID(ctx context.Context, id uuid.UUID) (*Bagian, error)
	CreateBagian(ctx context.Context, b *Bagian) error
	UpdateBagian(ctx context.Context, b *Bagian) error
	DeleteBagian(ctx context.Context, id uuid.UUID) error

	FindSupervisors(ctx context.Context) ([]Supervisor, error)
	FindSupervisorByID(ctx context.Context, id uuid.UUID) (*Supervisor, error)
	CreateSupervisor(ctx context.Context, sup *Supervisor) error
	UpdateSupervisor(ctx context.Context, sup *Supervisor) error
	DeleteSupervisor(ctx context.Context, id uuid.UUID) error
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

func (r *repository) FindAreas(ctx context.Context) ([]Area, error) {
	var areas []Area
	err := r.db.WithContext(ctx).
		Order("display_order ASC, name ASC").
		Find(&areas).Error
	return areas, err
}

func (r *repository) FindAreaByID(ctx context.Context, id uuid.UUID) (*Area, error) {
	var area Area
	if err := r.db.WithContext(ctx).First(&area, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *repository) CreateArea(ctx context.Context, area *Area) error {
	return r.db.WithContext(ctx).Create(area).Error
}

func (r *repository) UpdateArea(ctx context.Context, area *Area) error {
	return r.db.WithContext(ctx).
		Model(area).
		Select("name", "plant", "display_order", "is_active", "updated_at").
		Updates(area).Error
}

func (r *repository) DeleteArea(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &Area{}, id)
}

func (r *repository) CountBagianInArea(ctx context.Context, areaID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Bagian{}).Where("area_id = ?", areaID).Count(&n).Error
	return n, err
}

func (r *repository) FindBagian(ctx context.Context) ([]Bagian, error) {
	var rows []Bagian
	err := r.db.WithContext(ctx).
		Preload("Area").
		Order("display_order ASC, name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindBagianByID(ctx context.Context, id uuid.UUID) (*Bagian, error) {
	var b Bagian
	if err := r.db.WithContext(ctx).Preload("Area").First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) CreateBagian(ctx context.Context, b *Bagian) error {
	return r.db.WithContext(ctx).Omit("Area").Create(b).Error
}

func (r *repository) UpdateBagian(ctx context.Context, b *Bagian) error {
	return r.db.WithContext(ctx).
		Model(b).
		Omit("Area").
		Select("area_id", "name", "lines", "display_order", "updated_at").
		Updates(b).Error
}

func (r *repository) DeleteBagian(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &Bagian{}, id)
}

func (r *repository) FindSupervisors(ctx context.Context) ([]Supervisor, error) {
	var sups []Supervisor
	err := r.db.WithContext(ctx).
		Order("display_order ASC, name ASC").
		Find(&sups).Error
	return sups, err
}

func (r *repository) FindSupervisorByID(ctx context.Context, id uuid.UUID) (*Supervisor, error) {
	var sup Supervisor
	if err := r.db.WithContext(ctx).First(&sup, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sup, nil
}

func (r *repository) CreateSupervisor(ctx context.Context, sup *Supervisor) error {
	return r.db.WithContext(ctx).Create(sup).Error
}

func (r *repository) UpdateSupervisor(ctx context.Context, sup *Supervisor) error {
	return r.db.WithContext(ctx).
		Model(sup).
		Select("name", "plant", "display_order", "is_active", "updated_at").
		Updates(sup).Error
}

func (r *repository) DeleteSupervisor(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &Supervisor{}, id)
}

func deleteByID(db *gorm.DB, model any, id uuid.UUID) error {
	res := db.Delete(model, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
