package services

import (
	"context"

	"github.com/mcosta87/budget-ledger/internal/core/domain"
	"github.com/mcosta87/budget-ledger/internal/dto"
)

// TransactionSvcFacade is the transaction lifecycle orchestrator: it validates
// authorization and project state, constructs the immutable transaction,
// invokes the signature and hashing components, and persists the transaction
// together with its creation audit entry.
type TransactionSvcFacade interface {
	// CreateTransaction records a new financial transaction against a project.
	// Only the project's coordinator may record transactions, and only while
	// the project is neither completed nor cancelled.
	CreateTransaction(ctx context.Context, projectID string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// GetTransactionByID retrieves a single transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByProject retrieves a paginated list of a project's
	// transactions.
	ListTransactionsByProject(ctx context.Context, projectID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// GetProjectBalance reconciles a project's full transaction history into a
	// balance with per-transaction running balances and an advisory budget
	// warning when over budget.
	GetProjectBalance(ctx context.Context, projectID string) (*dto.ProjectBalanceResponse, error)
}
