package repositories

import (
	"context"
	"time"

	"github.com/mcosta87/budget-ledger/internal/core/domain"
)

// AuditEntryFilter narrows audit trail queries. Zero-value fields are ignored.
type AuditEntryFilter struct {
	EntityType string
	EntityID   string
	UserID     string
	From       *time.Time
	To         *time.Time
}

// AuditReader defines read operations over the audit trail.
type AuditReader interface {
	// ListAuditEntries retrieves a paginated, filtered slice of the audit trail,
	// newest first.
	ListAuditEntries(ctx context.Context, filter AuditEntryFilter, limit int, nextToken *string) ([]domain.AuditEntry, *string, error)

	// FindAuditEntriesByEntity retrieves the full audit history of one entity.
	FindAuditEntriesByEntity(ctx context.Context, entityType, entityID string) ([]domain.AuditEntry, error)

	// FindAuditEntriesByProjectID retrieves every audit entry derived from a
	// project's transactions, for integrity verification.
	FindAuditEntriesByProjectID(ctx context.Context, projectID string) ([]domain.AuditEntry, error)
}

// AuditWriter defines the single write operation of the append-only audit
// trail. There is no update or delete path by design.
type AuditWriter interface {
	// SaveAuditEntry appends one entry to the audit trail.
	SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error
}

// AuditRepositoryFacade combines the audit repository interfaces.
type AuditRepositoryFacade interface {
	AuditReader
	AuditWriter
}
