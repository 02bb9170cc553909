package dto

import (
	"time"

	"github.com/mcosta87/budget-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload to record a financial
// transaction against a project. The bank account is resolved from the
// project; only the accounting categorization is supplied by the caller.
type CreateTransactionRequest struct {
	Amount              decimal.Decimal `json:"amount" binding:"required"`
	TransactionDate     time.Time       `json:"transactionDate" binding:"required"`
	TransactionType     string          `json:"transactionType" binding:"required,oneof=DEBIT CREDIT"`
	AccountingAccountID string          `json:"accountingAccountID" binding:"required"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID       string          `json:"transactionID"`
	ProjectID           string          `json:"projectID"`
	BankAccountID       string          `json:"bankAccountID"`
	AccountingAccountID string          `json:"accountingAccountID"`
	Amount              decimal.Decimal `json:"amount"`
	TransactionDate     time.Time       `json:"transactionDate"`
	TransactionType     string          `json:"transactionType"`
	CreatedBy           string          `json:"createdBy"`
	CreatedAt           time.Time       `json:"createdAt"`
	DigitalSignature    string          `json:"digitalSignature"`
	DataHash            string          `json:"dataHash"`
}

// ListTransactionsParams holds pagination parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is a paginated page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ProjectBalanceResponse carries the reconciled balance of a project's
// transaction history plus an advisory budget warning when over budget.
type ProjectBalanceResponse struct {
	ProjectID       string                     `json:"projectID"`
	Balance         decimal.Decimal            `json:"balance"`
	Budget          decimal.Decimal            `json:"budget"`
	OverBudget      bool                       `json:"overBudget"`
	Warning         *string                    `json:"warning,omitempty"`
	RunningBalances map[string]decimal.Decimal `json:"runningBalances"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:       txn.TransactionID,
		ProjectID:           txn.ProjectID,
		BankAccountID:       txn.BankAccountID,
		AccountingAccountID: txn.AccountingAccountID,
		Amount:              txn.Amount,
		TransactionDate:     txn.TransactionDate,
		TransactionType:     string(txn.TransactionType),
		CreatedBy:           txn.CreatedBy,
		CreatedAt:           txn.CreatedAt,
		DigitalSignature:    txn.DigitalSignature,
		DataHash:            txn.DataHash,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
