package services

import (
	"context"

	"github.com/mcosta87/budget-ledger/internal/core/domain"
)

// IntegritySvcFacade verifies the tamper-evidence hashes of stored records.
// Verification is an O(n) scan with one hash computation per record; it
// detects post-hoc tampering, it does not prevent it.
type IntegritySvcFacade interface {
	// VerifyTransaction recomputes the transaction's canonical hash and
	// compares it to the stored one.
	VerifyTransaction(txn domain.Transaction) bool

	// VerifyAuditEntry recomputes the audit entry's canonical hash and
	// compares it to the stored one.
	VerifyAuditEntry(entry domain.AuditEntry) bool

	// FindTamperedTransactions returns the IDs of transactions whose stored
	// hash no longer matches.
	FindTamperedTransactions(txns []domain.Transaction) []string

	// FindTamperedAuditEntries returns the IDs of audit entries whose stored
	// hash no longer matches.
	FindTamperedAuditEntries(entries []domain.AuditEntry) []string

	// GenerateProjectIntegrityReport loads a project's transactions and
	// derived audit entries and verifies all of them. A report with
	// IsValid=false is returned, not an error; detection must surface.
	GenerateProjectIntegrityReport(ctx context.Context, projectID string) (*domain.IntegrityReport, error)
}
