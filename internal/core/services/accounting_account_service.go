package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mcosta87/budget-ledger/internal/apperrors"
	"github.com/mcosta87/budget-ledger/internal/core/domain"
	portsrepo "github.com/mcosta87/budget-ledger/internal/core/ports/repositories"
	portssvc "github.com/mcosta87/budget-ledger/internal/core/ports/services"
	"github.com/mcosta87/budget-ledger/internal/dto"
	"github.com/mcosta87/budget-ledger/internal/middleware"
)

// accountingAccountService manages the categorization accounts that
// transactions reference.
type accountingAccountService struct {
	accountRepo portsrepo.AccountingAccountRepositoryFacade
	auditSvc    portssvc.AuditSvcFacade
}

// NewAccountingAccountService creates a new AccountingAccountService.
func NewAccountingAccountService(accountRepo portsrepo.AccountingAccountRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.AccountingAccountSvcFacade {
	return &accountingAccountService{
		accountRepo: accountRepo,
		auditSvc:    auditSvc,
	}
}

// Ensure accountingAccountService implements the portssvc.AccountingAccountSvcFacade interface
var _ portssvc.AccountingAccountSvcFacade = (*accountingAccountService)(nil)

// CreateAccountingAccount registers a categorization account after validating
// its structural code format. Uniqueness is enforced by the repository.
func (s *accountingAccountService) CreateAccountingAccount(ctx context.Context, req dto.CreateAccountingAccountRequest, creatorUserID string) (*domain.AccountingAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidAccountingCode(req.Code) {
		return nil, fmt.Errorf("%w: accounting code %q does not match the NNNN.NN.NNNN format", apperrors.ErrValidation, req.Code)
	}

	now := time.Now().UTC()
	account := domain.AccountingAccount{
		AccountingAccountID: uuid.NewString(),
		Code:                req.Code,
		Name:                req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccountingAccount(ctx, account); err != nil {
		logger.Error("Failed to save accounting account", "error", err, "code", req.Code)
		return nil, fmt.Errorf("failed to save accounting account: %w", err)
	}

	snapshot, err := json.Marshal(account)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize accounting account snapshot: %w", err)
	}
	snapStr := string(snapshot)
	if _, err := s.auditSvc.RecordAction(ctx, creatorUserID, domain.AuditActionCreate, "AccountingAccount", account.AccountingAccountID, nil, &snapStr); err != nil {
		logger.Error("Failed to audit accounting account creation", "error", err, "accounting_account_id", account.AccountingAccountID)
		return nil, err
	}

	logger.Info("Accounting account created", "accounting_account_id", account.AccountingAccountID, "code", account.Code)
	return &account, nil
}

// GetAccountingAccountByID retrieves an accounting account.
func (s *accountingAccountService) GetAccountingAccountByID(ctx context.Context, accountingAccountID string) (*domain.AccountingAccount, error) {
	account, err := s.accountRepo.FindAccountingAccountByID(ctx, accountingAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find accounting account %s: %w", accountingAccountID, err)
	}
	return account, nil
}

// ListAccountingAccounts retrieves a paginated list of accounting accounts.
func (s *accountingAccountService) ListAccountingAccounts(ctx context.Context, params dto.ListAccountingAccountsParams) (*dto.ListAccountingAccountsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	accounts, nextToken, err := s.accountRepo.ListAccountingAccounts(ctx, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list accounting accounts", "error", err)
		return nil, fmt.Errorf("failed to retrieve accounting accounts: %w", err)
	}

	return &dto.ListAccountingAccountsResponse{
		Accounts:  dto.ToAccountingAccountResponses(accounts),
		NextToken: nextToken,
	}, nil
}

// DeleteAccountingAccount removes an accounting account. The repository
// enforces restrict-on-delete and returns ErrConflict while transactions still
// reference the account. The removal is audited.
func (s *accountingAccountService) DeleteAccountingAccount(ctx context.Context, accountingAccountID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountingAccountByID(ctx, accountingAccountID)
	if err != nil {
		return fmt.Errorf("failed to find accounting account %s: %w", accountingAccountID, err)
	}

	if err := s.accountRepo.DeleteAccountingAccount(ctx, accountingAccountID); err != nil {
		logger.Warn("Failed to delete accounting account", "error", err, "accounting_account_id", accountingAccountID)
		return fmt.Errorf("failed to delete accounting account: %w", err)
	}

	snapshot, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to serialize accounting account snapshot: %w", err)
	}
	snapStr := string(snapshot)
	if _, err := s.auditSvc.RecordAction(ctx, requestingUserID, domain.AuditActionDelete, "AccountingAccount", accountingAccountID, &snapStr, nil); err != nil {
		logger.Error("Failed to audit accounting account deletion", "error", err, "accounting_account_id", accountingAccountID)
		return err
	}

	logger.Info("Accounting account deleted", "accounting_account_id", accountingAccountID)
	return nil
}
