package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mcosta87/budget-ledger/internal/apperrors"
	"github.com/mcosta87/budget-ledger/internal/core/domain"
	portsrepo "github.com/mcosta87/budget-ledger/internal/core/ports/repositories"
	portssvc "github.com/mcosta87/budget-ledger/internal/core/ports/services"
	"github.com/mcosta87/budget-ledger/internal/dto"
	"github.com/mcosta87/budget-ledger/internal/middleware"
	"github.com/mcosta87/budget-ledger/internal/utils/integrity"
)

// auditService manages the append-only audit trail.
type auditService struct {
	auditRepo    portsrepo.AuditRepositoryFacade
	signatureSvc portssvc.SignatureSvcFacade
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade, signatureSvc portssvc.SignatureSvcFacade) portssvc.AuditSvcFacade {
	return &auditService{
		auditRepo:    auditRepo,
		signatureSvc: signatureSvc,
	}
}

// Ensure auditService implements the portssvc.AuditSvcFacade interface
var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// BuildEntry assembles a signed, hashed audit entry without persisting it.
// Signature and hash are computed exactly once here, over the assembled
// fields; the entry must not be mutated afterward.
func (s *auditService) BuildEntry(ctx context.Context, userID, action, entityType, entityID string, previousValue, newValue *string) (*domain.AuditEntry, error) {
	if userID == "" || action == "" || entityType == "" || entityID == "" {
		return nil, fmt.Errorf("%w: audit entry requires user, action, entity type and entity id", apperrors.ErrValidation)
	}

	entry := domain.AuditEntry{
		AuditEntryID:  uuid.NewString(),
		UserID:        userID,
		Action:        action,
		EntityType:    entityType,
		EntityID:      entityID,
		Timestamp:     integrity.NormalizeTimestamp(time.Now()),
		PreviousValue: previousValue,
		NewValue:      newValue,
	}

	signature, err := s.signatureSvc.SignAuditEntry(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign audit entry: %w", err)
	}
	entry.DigitalSignature = signature

	hash, err := integrity.ComputeHash(integrity.AuditEntryCanonical(entry))
	if err != nil {
		return nil, fmt.Errorf("failed to hash audit entry: %w", err)
	}
	entry.DataHash = hash

	return &entry, nil
}

// RecordAction builds and persists an audit entry in one step.
func (s *auditService) RecordAction(ctx context.Context, userID, action, entityType, entityID string, previousValue, newValue *string) (*domain.AuditEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.BuildEntry(ctx, userID, action, entityType, entityID, previousValue, newValue)
	if err != nil {
		return nil, err
	}

	if err := s.auditRepo.SaveAuditEntry(ctx, *entry); err != nil {
		logger.Error("Failed to persist audit entry", "error", err, "entity_type", entityType, "entity_id", entityID)
		return nil, fmt.Errorf("failed to save audit entry: %w", err)
	}

	logger.Debug("Audit entry recorded", "audit_entry_id", entry.AuditEntryID, "action", action, "entity_type", entityType)
	return entry, nil
}

// ListAuditEntries queries the audit trail by entity, user, and date range.
func (s *auditService) ListAuditEntries(ctx context.Context, params dto.ListAuditEntriesParams) (*dto.ListAuditEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	filter := portsrepo.AuditEntryFilter{
		EntityType: params.EntityType,
		EntityID:   params.EntityID,
		UserID:     params.UserID,
		From:       params.From,
		To:         params.To,
	}

	entries, nextToken, err := s.auditRepo.ListAuditEntries(ctx, filter, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list audit entries", "error", err)
		return nil, fmt.Errorf("failed to retrieve audit entries: %w", err)
	}

	return &dto.ListAuditEntriesResponse{
		Entries:   dto.ToAuditEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

// GetEntityHistory retrieves the full audit history of one entity.
func (s *auditService) GetEntityHistory(ctx context.Context, entityType, entityID string) ([]domain.AuditEntry, error) {
	entries, err := s.auditRepo.FindAuditEntriesByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve audit history for %s %s: %w", entityType, entityID, err)
	}
	return entries, nil
}
