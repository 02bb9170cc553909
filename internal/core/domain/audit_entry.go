package domain

import "time"

// Common audit actions. Action is a free-form short code; these are the ones
// the services emit themselves.
const (
	AuditActionCreate = "Create"
	AuditActionUpdate = "Update"
	AuditActionDelete = "Delete"
)

// AuditEntry is an append-only log record of a mutating action on a tracked
// entity. Entries carry the same tamper-evidence contract as transactions:
// DataHash and DigitalSignature are computed once at write time over all other
// fields. There is no update or delete path for audit entries.
type AuditEntry struct {
	AuditEntryID     string    `json:"auditEntryID"` // Primary key (UUID)
	UserID           string    `json:"userID"`       // Acting user
	Action           string    `json:"action"`       // e.g. "Create", "Update"
	EntityType       string    `json:"entityType"`   // Affected entity kind, e.g. "Transaction"
	EntityID         string    `json:"entityID"`
	Timestamp        time.Time `json:"timestamp"`
	PreviousValue    *string   `json:"previousValue,omitempty"` // Serialized snapshot, nil on create
	NewValue         *string   `json:"newValue,omitempty"`      // Serialized snapshot
	DigitalSignature string    `json:"digitalSignature"`
	DataHash         string    `json:"dataHash"`
}
