package dto

import (
	"time"

	"github.com/mcosta87/budget-ledger/internal/core/domain"
)

// CreateAccountingAccountRequest defines the payload to register an accounting
// categorization account. The code must follow the NNNN.NN.NNNN format.
type CreateAccountingAccountRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required,max=200"`
}

// AccountingAccountResponse defines the data returned for an accounting account.
type AccountingAccountResponse struct {
	AccountingAccountID string    `json:"accountingAccountID"`
	Code                string    `json:"code"`
	Name                string    `json:"name"`
	CreatedAt           time.Time `json:"createdAt"`
}

// ListAccountingAccountsParams holds pagination parameters.
type ListAccountingAccountsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListAccountingAccountsResponse is a paginated page of accounting accounts.
type ListAccountingAccountsResponse struct {
	Accounts  []AccountingAccountResponse `json:"accounts"`
	NextToken *string                     `json:"nextToken,omitempty"`
}

// ToAccountingAccountResponse converts a domain.AccountingAccount to its DTO.
func ToAccountingAccountResponse(acc *domain.AccountingAccount) AccountingAccountResponse {
	return AccountingAccountResponse{
		AccountingAccountID: acc.AccountingAccountID,
		Code:                acc.Code,
		Name:                acc.Name,
		CreatedAt:           acc.CreatedAt,
	}
}

// ToAccountingAccountResponses converts a slice of domain accounting accounts.
func ToAccountingAccountResponses(accounts []domain.AccountingAccount) []AccountingAccountResponse {
	responses := make([]AccountingAccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountingAccountResponse(&accounts[i])
	}
	return responses
}
