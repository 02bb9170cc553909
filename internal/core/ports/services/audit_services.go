package services

import (
	"context"

	"github.com/mcosta87/budget-ledger/internal/core/domain"
	"github.com/mcosta87/budget-ledger/internal/dto"
)

// AuditSvcFacade manages the append-only audit trail. Every mutating action on
// a tracked entity produces one signed, hashed entry; entries are never
// updated or deleted.
type AuditSvcFacade interface {
	// BuildEntry assembles a fully signed and hashed audit entry without
	// persisting it. Callers that need atomicity with another write (e.g. the
	// transaction orchestrator) persist the returned entry themselves.
	BuildEntry(ctx context.Context, userID, action, entityType, entityID string, previousValue, newValue *string) (*domain.AuditEntry, error)

	// RecordAction builds and persists an audit entry in one step.
	RecordAction(ctx context.Context, userID, action, entityType, entityID string, previousValue, newValue *string) (*domain.AuditEntry, error)

	// ListAuditEntries queries the audit trail by entity, user, and date range.
	ListAuditEntries(ctx context.Context, params dto.ListAuditEntriesParams) (*dto.ListAuditEntriesResponse, error)

	// GetEntityHistory retrieves the full audit history of one entity.
	GetEntityHistory(ctx context.Context, entityType, entityID string) ([]domain.AuditEntry, error)
}
