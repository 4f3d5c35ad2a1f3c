package counter

import (
	"context"

	"gorm.io/gorm"
)

// RecordCounter backs the per-plant running numbers of QC records.
type RecordCounter struct {
	Plant       string `gorm:"column:plant;primaryKey;type:varchar(50)"`
	CounterType string `gorm:"column:counter_type;primaryKey;type:varchar(50)"`
	LastValue   int64  `gorm:"column:last_value;not null;default:0"`
}

func (RecordCounter) TableName() string {
	return "record_counters"
}

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	GetNextValue(ctx context.Context, plant string, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetNextValue(ctx context.Context, plant string, counterType string) (int64, error) {
	var nextValue int64

	// Atomic upsert so concurrent submissions on the same plant never share a number.
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO record_counters (plant, counter_type, last_value)
		VALUES (?, ?, 1)
		ON CONFLICT (plant, counter_type) DO UPDATE
		SET last_value = record_counters.last_value + 1
		RETURNING last_value
	`, plant, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
