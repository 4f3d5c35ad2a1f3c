package audit

type LogResponse struct {
	EventID    string `json:"event_id"`
	EventType  string `json:"event_type"`
	AccountID  string `json:"account_id,omitempty"`
	Username   string `json:"username"`
	Actor      string `json:"actor,omitempty"`
	Source     string `json:"source,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
