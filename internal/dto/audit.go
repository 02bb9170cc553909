package dto

import (
	"time"

	"github.com/mcosta87/budget-ledger/internal/core/domain"
)

// ListAuditEntriesParams filters and paginates audit trail queries. All filter
// fields are optional.
type ListAuditEntriesParams struct {
	EntityType string     `form:"entityType"`
	EntityID   string     `form:"entityID"`
	UserID     string     `form:"userID"`
	From       *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To         *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit      int        `form:"limit"`
	NextToken  *string    `form:"nextToken"`
}

// AuditEntryResponse defines the data returned for an audit entry.
type AuditEntryResponse struct {
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

// ListAuditEntriesResponse is a paginated page of audit entries.
type ListAuditEntriesResponse struct {
	Entries   []AuditEntryResponse `json:"entries"`
	NextToken *string              `json:"nextToken,omitempty"`
}

// ToAuditEntryResponse converts a domain.AuditEntry to its response DTO.
func ToAuditEntryResponse(e *domain.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		AuditEntryID:     e.AuditEntryID,
		UserID:           e.UserID,
		Action:           e.Action,
		EntityType:       e.EntityType,
		EntityID:         e.EntityID,
		Timestamp:        e.Timestamp,
		PreviousValue:    e.PreviousValue,
		NewValue:         e.NewValue,
		DigitalSignature: e.DigitalSignature,
		DataHash:         e.DataHash,
	}
}

// ToAuditEntryResponses converts a slice of domain audit entries.
func ToAuditEntryResponses(entries []domain.AuditEntry) []AuditEntryResponse {
	responses := make([]AuditEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToAuditEntryResponse(&entries[i])
	}
	return responses
}
