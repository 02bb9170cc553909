package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mcosta87/budget-ledger/internal/core/domain"
	portsrepo "github.com/mcosta87/budget-ledger/internal/core/ports/repositories"
	portssvc "github.com/mcosta87/budget-ledger/internal/core/ports/services"
	"github.com/mcosta87/budget-ledger/internal/middleware"
	"github.com/mcosta87/budget-ledger/internal/utils/integrity"
)

// integrityService recomputes stored hashes to detect post-hoc tampering,
// e.g. direct database edits that bypassed the application.
type integrityService struct {
	transactionRepo portsrepo.TransactionReader
	auditRepo       portsrepo.AuditReader
}

// NewIntegrityService creates a new IntegrityService.
func NewIntegrityService(transactionRepo portsrepo.TransactionReader, auditRepo portsrepo.AuditReader) portssvc.IntegritySvcFacade {
	return &integrityService{
		transactionRepo: transactionRepo,
		auditRepo:       auditRepo,
	}
}

// Ensure integrityService implements the portssvc.IntegritySvcFacade interface
var _ portssvc.IntegritySvcFacade = (*integrityService)(nil)

// VerifyTransaction recomputes the transaction's canonical hash from its own
// fields and compares it to the stored DataHash.
func (s *integrityService) VerifyTransaction(txn domain.Transaction) bool {
	return integrity.VerifyHash(integrity.TransactionCanonical(txn), txn.DataHash)
}

// VerifyAuditEntry recomputes the audit entry's canonical hash and compares it
// to the stored DataHash.
func (s *integrityService) VerifyAuditEntry(entry domain.AuditEntry) bool {
	return integrity.VerifyHash(integrity.AuditEntryCanonical(entry), entry.DataHash)
}

// FindTamperedTransactions returns the IDs of transactions whose stored hash
// no longer matches their fields.
func (s *integrityService) FindTamperedTransactions(txns []domain.Transaction) []string {
	tampered := make([]string, 0)
	for _, txn := range txns {
		if !s.VerifyTransaction(txn) {
			tampered = append(tampered, txn.TransactionID)
		}
	}
	return tampered
}

// FindTamperedAuditEntries returns the IDs of audit entries whose stored hash
// no longer matches their fields.
func (s *integrityService) FindTamperedAuditEntries(entries []domain.AuditEntry) []string {
	tampered := make([]string, 0)
	for _, entry := range entries {
		if !s.VerifyAuditEntry(entry) {
			tampered = append(tampered, entry.AuditEntryID)
		}
	}
	return tampered
}

// GenerateProjectIntegrityReport verifies every transaction recorded against a
// project and every audit entry derived from them. It is a full O(n) scan with
// one hash computation per record. Detected tampering is logged as a security
// event and reported; it is never swallowed.
func (s *integrityService) GenerateProjectIntegrityReport(ctx context.Context, projectID string) (*domain.IntegrityReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	transactions, err := s.transactionRepo.FindTransactionsByProjectID(ctx, projectID)
	if err != nil {
		logger.Error("Failed to load transactions for integrity verification", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to load transactions for verification: %w", err)
	}

	entries, err := s.auditRepo.FindAuditEntriesByProjectID(ctx, projectID)
	if err != nil {
		logger.Error("Failed to load audit entries for integrity verification", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to load audit entries for verification: %w", err)
	}

	report := &domain.IntegrityReport{
		VerifiedAt:             time.Now().UTC(),
		TransactionsChecked:    len(transactions),
		TamperedTransactionIDs: s.FindTamperedTransactions(transactions),
		AuditEntriesChecked:    len(entries),
		TamperedAuditEntryIDs:  s.FindTamperedAuditEntries(entries),
	}
	report.IsValid = len(report.TamperedTransactionIDs) == 0 && len(report.TamperedAuditEntryIDs) == 0

	if !report.IsValid {
		// Security event: stored records no longer match their hashes.
		logger.Error("Integrity verification detected tampered records",
			"project_id", projectID,
			"tampered_transactions", report.TamperedTransactionIDs,
			"tampered_audit_entries", report.TamperedAuditEntryIDs,
		)
	} else {
		logger.Info("Integrity verification passed",
			"project_id", projectID,
			"transactions_checked", report.TransactionsChecked,
			"audit_entries_checked", report.AuditEntriesChecked,
		)
	}

	return report, nil
}
