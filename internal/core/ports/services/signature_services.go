package services

import "github.com/mcosta87/budget-ledger/internal/core/domain"

// SignatureSvcFacade produces keyed message authentication codes for
// non-repudiation. Signing is a pure function of (data, userID, secret); no
// network or storage access, safe for concurrent use.
type SignatureSvcFacade interface {
	// Generate computes an HMAC-SHA256 over "{userID}|{data}" and returns it
	// hex encoded. Fails on empty data.
	Generate(data, userID string) (string, error)

	// Validate regenerates the signature and compares case-insensitively.
	// Fails on empty data or signature.
	Validate(data, userID, signature string) (bool, error)

	// SignTransaction signs a transaction's canonical payload. The creator id
	// is folded into the HMAC as the userID parameter rather than appearing in
	// the payload itself.
	SignTransaction(txn domain.Transaction) (string, error)

	// ValidateTransaction verifies a transaction's stored signature.
	ValidateTransaction(txn domain.Transaction) (bool, error)

	// SignAuditEntry signs an audit entry's canonical payload keyed by the
	// acting user.
	SignAuditEntry(entry domain.AuditEntry) (string, error)

	// ValidateAuditEntry verifies an audit entry's stored signature.
	ValidateAuditEntry(entry domain.AuditEntry) (bool, error)
}
