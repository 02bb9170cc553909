package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mcosta87/budget-ledger/internal/apperrors"
	"github.com/mcosta87/budget-ledger/internal/core/domain"
	portsrepo "github.com/mcosta87/budget-ledger/internal/core/ports/repositories"
	portssvc "github.com/mcosta87/budget-ledger/internal/core/ports/services"
	"github.com/mcosta87/budget-ledger/internal/dto"
	"github.com/mcosta87/budget-ledger/internal/middleware"
	"github.com/mcosta87/budget-ledger/internal/utils/accounting"
	"github.com/mcosta87/budget-ledger/internal/utils/integrity"
	"github.com/shopspring/decimal"
)

var (
	ErrProjectClosed     = errors.New("project no longer accepts transactions")
	ErrNoBankAccount     = errors.New("project has no bank account")
	ErrNotCoordinator    = errors.New("only the project coordinator may record transactions")
	ErrAmountNotPositive = errors.New("transaction amount must be positive")
	ErrFutureDate        = errors.New("transaction date cannot be in the future")
)

// transactionService orchestrates the transaction lifecycle: authorization,
// project-state checks, construction, signing, hashing, and atomic persistence
// of the transaction and its creation audit entry.
type transactionService struct {
	transactionRepo portsrepo.TransactionRepositoryWithTx
	projectRepo     portsrepo.ProjectRepositoryFacade
	accountingRepo  portsrepo.AccountingAccountRepositoryFacade
	signatureSvc    portssvc.SignatureSvcFacade
	auditSvc        portssvc.AuditSvcFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryWithTx,
	projectRepo portsrepo.ProjectRepositoryFacade,
	accountingRepo portsrepo.AccountingAccountRepositoryFacade,
	signatureSvc portssvc.SignatureSvcFacade,
	auditSvc portssvc.AuditSvcFacade,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		projectRepo:     projectRepo,
		accountingRepo:  accountingRepo,
		signatureSvc:    signatureSvc,
		auditSvc:        auditSvc,
	}
}

// Ensure transactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// validateTransactionInvariants enforces the domain-level structural
// invariants. Request binding checks the same rules at the boundary, but the
// domain enforces them independently.
func validateTransactionInvariants(amount decimal.Decimal, date time.Time, now time.Time) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
	}
	if date.After(now) {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrFutureDate)
	}
	return nil
}

// CreateTransaction records a new immutable financial transaction against a
// project. Failure modes, in check order: project not found; requester is not
// the coordinator; project completed/cancelled; accounting account not found;
// project without bank account; structural validation.
func (s *transactionService) CreateTransaction(ctx context.Context, projectID string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find project for transaction creation", "error", err, "project_id", projectID)
		}
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	if project.CoordinatorID != creatorUserID {
		logger.Warn("Transaction creation attempted by non-coordinator", "project_id", projectID, "coordinator_id", project.CoordinatorID)
		return nil, fmt.Errorf("%w: %s", apperrors.ErrForbidden, ErrNotCoordinator)
	}

	if !project.Status.AcceptsTransactions() {
		logger.Warn("Transaction creation attempted on closed project", "project_id", projectID, "status", project.Status)
		return nil, fmt.Errorf("%w: %s (status %s)", apperrors.ErrConflict, ErrProjectClosed, project.Status)
	}

	accountingAccount, err := s.accountingRepo.FindAccountingAccountByID(ctx, req.AccountingAccountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find accounting account", "error", err, "accounting_account_id", req.AccountingAccountID)
		}
		return nil, fmt.Errorf("failed to find accounting account %s: %w", req.AccountingAccountID, err)
	}

	if project.BankAccount == nil {
		logger.Warn("Transaction creation attempted on project without bank account", "project_id", projectID)
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrNoBankAccount)
	}

	// Timestamps are normalized to what the timestamptz columns store before
	// anything is signed or hashed, so re-reading the row reproduces the
	// exact canonical bytes.
	now := integrity.NormalizeTimestamp(time.Now())

	txn := domain.Transaction{
		TransactionID:       uuid.NewString(),
		ProjectID:           project.ProjectID,
		BankAccountID:       project.BankAccount.BankAccountID,
		AccountingAccountID: accountingAccount.AccountingAccountID,
		Amount:              req.Amount.Round(2),
		TransactionDate:     integrity.NormalizeTimestamp(req.TransactionDate),
		TransactionType:     domain.TransactionType(req.TransactionType),
		CreatedBy:           creatorUserID,
		CreatedAt:           now,
	}

	// Signature and hash are computed exactly once, over the assembled fields.
	// The two computations are independent of each other's output.
	signature, err := s.signatureSvc.SignTransaction(txn)
	if err != nil {
		logger.Error("Failed to sign transaction", "error", err)
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	txn.DigitalSignature = signature

	hash, err := integrity.ComputeHash(integrity.TransactionCanonical(txn))
	if err != nil {
		logger.Error("Failed to hash transaction", "error", err)
		return nil, fmt.Errorf("failed to hash transaction: %w", err)
	}
	txn.DataHash = hash

	if err := validateTransactionInvariants(txn.Amount, txn.TransactionDate, now); err != nil {
		return nil, err
	}

	newValue, err := json.Marshal(txn)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize transaction snapshot: %w", err)
	}
	snapshot := string(newValue)

	auditEntry, err := s.auditSvc.BuildEntry(ctx, creatorUserID, domain.AuditActionCreate, "Transaction", txn.TransactionID, nil, &snapshot)
	if err != nil {
		logger.Error("Failed to build creation audit entry", "error", err)
		return nil, fmt.Errorf("failed to build audit entry: %w", err)
	}

	// Transaction and audit entry are persisted in one database transaction;
	// a saved transaction without its audit entry must not occur.
	if err := s.transactionRepo.SaveTransactionWithAudit(ctx, txn, *auditEntry); err != nil {
		logger.Error("Failed to persist transaction with audit entry", "error", err, "transaction_id", txn.TransactionID)
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("Transaction created",
		"transaction_id", txn.TransactionID,
		"project_id", projectID,
		"amount", txn.Amount.StringFixed(2),
		"type", txn.TransactionType,
	)
	return &txn, nil
}

// GetTransactionByID retrieves a single transaction.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactionsByProject retrieves a paginated list of a project's transactions.
func (s *transactionService) ListTransactionsByProject(ctx context.Context, projectID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	transactions, nextToken, err := s.transactionRepo.ListTransactionsByProjectID(ctx, projectID, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list transactions", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		NextToken:    nextToken,
	}, nil
}

// GetProjectBalance reconciles a project's full transaction history into a
// balance with per-transaction running balances and an advisory budget warning.
func (s *transactionService) GetProjectBalance(ctx context.Context, projectID string) (*dto.ProjectBalanceResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	transactions, err := s.transactionRepo.FindTransactionsByProjectID(ctx, projectID)
	if err != nil {
		logger.Error("Failed to load transactions for balance calculation", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	balance := accounting.CalculateBalance(transactions)
	resp := &dto.ProjectBalanceResponse{
		ProjectID:       projectID,
		Balance:         balance,
		Budget:          project.Budget,
		OverBudget:      accounting.IsOverBudget(balance, project.Budget),
		Warning:         accounting.GenerateBudgetWarning(balance, project.Budget),
		RunningBalances: accounting.CalculateRunningBalances(transactions),
	}

	if resp.Warning != nil {
		logger.Warn("Project over budget", "project_id", projectID, "warning", *resp.Warning)
	}
	return resp, nil
}
