package events

import "time"

const AccountLifecycleTopic = "qc.account.lifecycle.v1"

const (
	AccountCreated = "account.created"
	AccountUpdated = "account.updated"
	AccountDeleted = "account.deleted"
)

// AccountLifecycleEvent is published for every account write. EventID equals
// the outbox row id so consumers can drop redeliveries.
type AccountLifecycleEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	AccountID  string    `json:"account_id"`
	Username   string    `json:"username"`
	Role       string    `json:"role,omitempty"`
	Actor      string    `json:"actor,omitempty"`
	Source     string    `json:"source,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Sources of an account write.
const (
	SourceManual = "manual"
	SourceBulk   = "bulk"
	SourceImport = "import"
	SourceSeed   = "seed"
)
