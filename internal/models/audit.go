package models

import "time"

// AuditLogEntry - запись журнала действий пользователей
type AuditLogEntry struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	UserID    string         `json:"user_id"`
	Action    string         `json:"action"`
	Target    string         `json:"target"`
	TargetID  string         `json:"target_id"`
	Details   map[string]any `json:"details,omitempty"`
}

func (e AuditLogEntry) Clone() AuditLogEntry {
	out := e
	out.Details = cloneDetails(e.Details)
	return out
}

type AuditFilter struct {
	UserID   string
	Target   string
	TargetID string
	Limit    int
}

const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationAlert   = "alert"
)

type Notification struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
}
