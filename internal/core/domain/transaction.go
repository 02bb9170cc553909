package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// CanonicalCode returns the numeric code used in canonical hash and signature
// strings. Debit=0, Credit=1. The codes are part of the stored-hash format and
// must never change.
func (t TransactionType) CanonicalCode() int {
	if t == Credit {
		return 1
	}
	return 0
}

// Transaction is an immutable financial event recorded against a project's
// bank account and classified by an accounting account.
//
// DataHash and DigitalSignature are computed once at creation from the other
// fields (plus CreatedBy) and are never recomputed or mutated afterward; a
// later recomputation that does not match marks the record as tampered.
// Transactions are never updated and never deleted.
type Transaction struct {
	TransactionID       string          `json:"transactionID"`       // Primary key (UUID)
	ProjectID           string          `json:"projectID"`           // FK -> Project
	BankAccountID       string          `json:"bankAccountID"`       // FK -> BankAccount (no ownership)
	AccountingAccountID string          `json:"accountingAccountID"` // FK -> AccountingAccount (no ownership)
	Amount              decimal.Decimal `json:"amount"`              // Positive, 2 decimal places
	TransactionDate     time.Time       `json:"transactionDate"`     // Must not be in the future at creation
	TransactionType     TransactionType `json:"transactionType"`     // DEBIT or CREDIT
	CreatedBy           string          `json:"createdBy"`           // UserID reference
	CreatedAt           time.Time       `json:"createdAt"`
	DigitalSignature    string          `json:"digitalSignature"` // Hex HMAC, opaque
	DataHash            string          `json:"dataHash"`         // Hex SHA-256, opaque
}
