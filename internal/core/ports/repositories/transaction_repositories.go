package repositories

import (
	"context"

	"github.com/mcosta87/budget-ledger/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionsByProjectID retrieves every transaction recorded against
	// a project. Used for balance reconciliation and integrity verification,
	// which both need the full history.
	FindTransactionsByProjectID(ctx context.Context, projectID string) ([]domain.Transaction, error)

	// ListTransactionsByProjectID retrieves a paginated list of a project's
	// transactions using token-based pagination.
	ListTransactionsByProjectID(ctx context.Context, projectID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for transaction data. Transactions
// are immutable financial records: there is deliberately no update or delete.
type TransactionWriter interface {
	// SaveTransactionWithAudit persists a transaction and its creation audit
	// entry atomically within one database transaction. Partial persistence
	// (transaction saved, audit entry lost) must not occur.
	SaveTransactionWithAudit(ctx context.Context, txn domain.Transaction, entry domain.AuditEntry) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with database
// transaction capabilities.
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
