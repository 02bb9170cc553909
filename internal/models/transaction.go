package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors the transaction_type column (DEBIT or CREDIT).
type TransactionType string

// Transaction represents a row in the transactions table. Rows are insert-only:
// there are no update or delete statements against this table.
type Transaction struct {
	TransactionID       string          `json:"transactionID"`
	ProjectID           string          `json:"projectID"`
	BankAccountID       string          `json:"bankAccountID"`
	AccountingAccountID string          `json:"accountingAccountID"`
	Amount              decimal.Decimal `json:"amount"`
	TransactionDate     time.Time       `json:"transactionDate"`
	TransactionType     TransactionType `json:"transactionType"`
	CreatedBy           string          `json:"createdBy"`
	CreatedAt           time.Time       `json:"createdAt"`
	DigitalSignature    string          `json:"digitalSignature"`
	DataHash            string          `json:"dataHash"`
}
