package models

import "time"

// AuditEntry represents a row in the audit_entries table. Rows are insert-only.
type AuditEntry struct {
	AuditEntryID     string    `json:"auditEntryID"`
	UserID           string    `json:"userID"`
	Action           string    `json:"action"`
	EntityType       string    `json:"entityType"`
	EntityID         string    `json:"entityID"`
	Timestamp        time.Time `json:"timestamp"`
	PreviousValue    *string   `json:"previousValue,omitempty"`
	NewValue         *string   `json:"newValue,omitempty"`
	DigitalSignature string    `json:"digitalSignature"`
	DataHash         string    `json:"dataHash"`
}
