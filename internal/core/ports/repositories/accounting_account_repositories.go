package repositories

import (
	"context"

	"github.com/mcosta87/budget-ledger/internal/core/domain"
)

// AccountingAccountReader defines read operations for accounting account data.
type AccountingAccountReader interface {
	// FindAccountingAccountByID retrieves an accounting account by identifier.
	FindAccountingAccountByID(ctx context.Context, accountingAccountID string) (*domain.AccountingAccount, error)

	// ListAccountingAccounts retrieves a paginated list of accounting accounts.
	ListAccountingAccounts(ctx context.Context, limit int, nextToken *string) ([]domain.AccountingAccount, *string, error)
}

// AccountingAccountWriter defines write operations for accounting account data.
type AccountingAccountWriter interface {
	// SaveAccountingAccount persists a new accounting account. Fails with
	// ErrDuplicate when the code is already registered.
	SaveAccountingAccount(ctx context.Context, account domain.AccountingAccount) error

	// DeleteAccountingAccount removes an accounting account. Fails with
	// ErrConflict while transactions still reference it (restrict-on-delete).
	DeleteAccountingAccount(ctx context.Context, accountingAccountID string) error
}

// AccountingAccountRepositoryFacade combines the accounting-account repository interfaces.
type AccountingAccountRepositoryFacade interface {
	AccountingAccountReader
	AccountingAccountWriter
}
