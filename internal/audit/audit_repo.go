package audit

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListFilter struct {
	Username  string
	EventType string
	Limit     int
}

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	// Insert stores entry unless its event id is already recorded.
	Insert(ctx context.Context, entry *Log) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]Log, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, entry *Log) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoNothing: true,
		}).
		Create(entry)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Log, error) {
	q := r.db.WithContext(ctx).Model(&Log{})
	if filter.Username != "" {
		q = q.Where("username = ?", filter.Username)
	}
	if filter.EventType != "" {
		q = q.Where("event_type = ?", filter.EventType)
	}

	var logs []Log
	err := q.Order("occurred_at DESC").Limit(filter.Limit).Find(&logs).Error
	return logs, err
}
