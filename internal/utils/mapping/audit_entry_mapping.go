package mapping

import (
	"github.com/mcosta87/budget-ledger/internal/core/domain"
	"github.com/mcosta87/budget-ledger/internal/models"
)

// ToModelAuditEntry converts a domain AuditEntry to a model AuditEntry
func ToModelAuditEntry(d domain.AuditEntry) models.AuditEntry {
	return models.AuditEntry{
		AuditEntryID:     d.AuditEntryID,
		UserID:           d.UserID,
		Action:           d.Action,
		EntityType:       d.EntityType,
		EntityID:         d.EntityID,
		Timestamp:        d.Timestamp,
		PreviousValue:    d.PreviousValue,
		NewValue:         d.NewValue,
		DigitalSignature: d.DigitalSignature,
		DataHash:         d.DataHash,
	}
}

// ToDomainAuditEntry converts a model AuditEntry to a domain AuditEntry
func ToDomainAuditEntry(m models.AuditEntry) domain.AuditEntry {
	return domain.AuditEntry{
		AuditEntryID:     m.AuditEntryID,
		UserID:           m.UserID,
		Action:           m.Action,
		EntityType:       m.EntityType,
		EntityID:         m.EntityID,
		Timestamp:        m.Timestamp,
		PreviousValue:    m.PreviousValue,
		NewValue:         m.NewValue,
		DigitalSignature: m.DigitalSignature,
		DataHash:         m.DataHash,
	}
}

// ToDomainAuditEntrySlice converts a slice of model audit entries
func ToDomainAuditEntrySlice(ms []models.AuditEntry) []domain.AuditEntry {
	ds := make([]domain.AuditEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuditEntry(m)
	}
	return ds
}
