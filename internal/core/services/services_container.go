package services

import (
	"fmt"

	portsrepo "github.com/mcosta87/budget-ledger/internal/core/ports/repositories"
	portssvc "github.com/mcosta87/budget-ledger/internal/core/ports/services"
	"github.com/mcosta87/budget-ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized
// dependencies. The signature service is constructed first since the audit,
// transaction and integrity services all build on it.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	container := &portssvc.ServiceContainer{}

	signatureSvc, err := NewSignatureService(cfg.SignatureSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize signature service: %w", err)
	}
	container.Signature = signatureSvc

	container.Audit = NewAuditService(repos.AuditRepo, container.Signature)
	container.Integrity = NewIntegrityService(repos.TransactionRepo, repos.AuditRepo)

	container.Project = NewProjectService(repos.ProjectRepo, container.Audit)
	container.BankAccount = NewBankAccountService(repos.BankAccountRepo, repos.ProjectRepo, container.Audit)
	container.AccountingAccount = NewAccountingAccountService(repos.AccountingAccountRepo, container.Audit)

	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.ProjectRepo,
		repos.AccountingAccountRepo,
		container.Signature,
		container.Audit,
	)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container, nil
}
