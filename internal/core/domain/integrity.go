package domain

import "time"

// IntegrityReport is the result of recomputing hashes over a project's stored
// transactions and audit entries. IsValid is true iff both tampered lists are
// empty. The report detects post-hoc tampering (e.g. direct database edits);
// it does not prevent it.
type IntegrityReport struct {
	VerifiedAt             time.Time `json:"verifiedAt"`
	TransactionsChecked    int       `json:"transactionsChecked"`
	TamperedTransactionIDs []string  `json:"tamperedTransactionIDs"`
	AuditEntriesChecked    int       `json:"auditEntriesChecked"`
	TamperedAuditEntryIDs  []string  `json:"tamperedAuditEntryIDs"`
	IsValid                bool      `json:"isValid"`
}
