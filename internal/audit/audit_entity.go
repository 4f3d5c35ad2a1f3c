package audit

import (
	"time"

	"github.com/google/uuid"
)

type Log struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EventID    string    `gorm:"column:event_id;type:varchar(64);not null;uniqueIndex:uq_audit_event_id"`
	EventType  string    `gorm:"column:event_type;type:varchar(64);not null;index"`
	AccountID  string    `gorm:"column:account_id;type:varchar(64)"`
	Username   string    `gorm:"column:username;type:varchar(64);index"`
	Actor      string    `gorm:"column:actor;type:varchar(64)"`
	Source     string    `gorm:"column:source;type:varchar(16)"`
	RequestID  string    `gorm:"column:request_id;type:varchar(64)"`
	Payload    []byte    `gorm:"column:payload;type:jsonb"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null;index"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Log) TableName() string {
	return "audit_logs"
}
