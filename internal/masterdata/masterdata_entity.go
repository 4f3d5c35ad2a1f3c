package masterdata

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Area struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:255;not null"`
	Plant        string    `gorm:"size:50;not null;index"`
	DisplayOrder int       `gorm:"not null"`
	IsActive     bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// Bagian is a section of an area, covering one or more production lines.
type Bagian struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey"`
	AreaID       uuid.UUID     `gorm:"type:uuid;not null;index"`
	Area         *Area         `gorm:"foreignKey:AreaID;constraint:OnDelete:RESTRICT"`
	Name         string        `gorm:"size:255;not null"`
	Lines        pq.Int64Array `gorm:"type:integer[];not null;default:'{}'"`
	DisplayOrder int           `gorm:"not null"`
	CreatedAt    time.Time     `gorm:"autoCreateTime"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime"`
}

func (Bagian) TableName() string {
	return "bagian"
}

type Supervisor struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:255;not null"`
	Plant        string    `gorm:"size:50;not null;index"`
	DisplayOrder int       `gorm:"not null"`
	IsActive     bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}
