package entities

import "time"

type AuthEventType string

const (
	AuthEventSignup        AuthEventType = "signup"
	AuthEventLogin         AuthEventType = "login"
	AuthEventTokenRejected AuthEventType = "token_rejected"
)

type AuthEventStatus string

const (
	AuthEventStatusSuccess AuthEventStatus = "success"
	AuthEventStatusFailed  AuthEventStatus = "failed"
)

// AuthEvent records one authentication attempt. Secrets are never stored;
// failures carry the error text and a per-request correlation ID.
type AuthEvent struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	AccountID     uint            `gorm:"index" json:"account_id"`
	EventType     AuthEventType   `gorm:"index;size:50" json:"event_type"`
	CorrelationID string          `gorm:"size:36" json:"correlation_id,omitempty"`
	IPAddress     string          `gorm:"size:45" json:"ip_address,omitempty"`
	Status        AuthEventStatus `gorm:"size:20" json:"status"`
	ErrorMsg      string          `gorm:"size:500" json:"error_msg,omitempty"`
	CreatedAt     time.Time       `gorm:"index" json:"created_at"`
}

func (AuthEvent) TableName() string {
	return "auth_events"
}
