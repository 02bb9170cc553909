package services

import (
	"context"

	"github.com/mcosta87/budget-ledger/internal/core/domain"
	"github.com/mcosta87/budget-ledger/internal/dto"
)

// AccountingAccountSvcFacade defines accounting account (categorization)
// operations.
type AccountingAccountSvcFacade interface {
	// CreateAccountingAccount registers a categorization account. The code
	// must match the NNNN.NN.NNNN format and be unique.
	CreateAccountingAccount(ctx context.Context, req dto.CreateAccountingAccountRequest, creatorUserID string) (*domain.AccountingAccount, error)

	// GetAccountingAccountByID retrieves an accounting account.
	GetAccountingAccountByID(ctx context.Context, accountingAccountID string) (*domain.AccountingAccount, error)

	// ListAccountingAccounts retrieves a paginated list of accounting accounts.
	ListAccountingAccounts(ctx context.Context, params dto.ListAccountingAccountsParams) (*dto.ListAccountingAccountsResponse, error)

	// DeleteAccountingAccount removes an accounting account. Fails with
	// ErrConflict while transactions reference it.
	DeleteAccountingAccount(ctx context.Context, accountingAccountID string, requestingUserID string) error
}
