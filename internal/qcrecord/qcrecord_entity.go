package qcrecord

import (
	"time"

	"github.com/google/uuid"
)

type Type string

// Record types double as the menu ids that gate them.
const (
	TypeSanitasiBesar  Type = "sanitasi_besar"
	TypeKliping        Type = "kliping"
	TypeMonitoringArea Type = "monitoring_area"
)

var prefixes = map[Type]string{
	TypeSanitasiBesar:  "SB",
	TypeKliping:        "KL",
	TypeMonitoringArea: "MA",
}

func ParseType(v string) (Type, bool) {
	t := Type(v)
	_, ok := prefixes[t]
	return t, ok
}

func (t Type) Prefix() string {
	return prefixes[t]
}

func (t Type) MenuID() string {
	return string(t)
}

type Record struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number         string     `gorm:"type:varchar(40);not null;uniqueIndex:uq_qc_records_number"`
	Type           string     `gorm:"type:varchar(30);not null;index:idx_qc_records_type_plant_date"`
	Plant          string     `gorm:"type:varchar(50);not null;index:idx_qc_records_type_plant_date"`
	Line           int        `gorm:"not null;default:0"`
	AreaID         *uuid.UUID `gorm:"type:uuid"`
	BagianID       *uuid.UUID `gorm:"type:uuid"`
	SupervisorID   *uuid.UUID `gorm:"type:uuid"`
	InspectionDate time.Time  `gorm:"type:date;not null;index:idx_qc_records_type_plant_date"`
	Shift          int        `gorm:"not null;default:0"`
	Result         string     `gorm:"type:varchar(20);not null"`
	Notes          string     `gorm:"type:text"`
	Payload        []byte     `gorm:"type:jsonb"`
	CreatedBy      string     `gorm:"type:varchar(64);not null"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
}

func (Record) TableName() string {
	return "qc_records"
}
