package repositories

import (
	"context"

	"github.com/mcosta87/budget-ledger/internal/core/domain"
)

// ProjectReader defines read operations for project data.
type ProjectReader interface {
	// FindProjectByID retrieves a project by its unique identifier, including
	// its bank account when one exists.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects retrieves a paginated list of projects using token-based
	// pagination. It returns the projects, a token for the next page, and an error.
	ListProjects(ctx context.Context, limit int, nextToken *string) ([]domain.Project, *string, error)
}

// ProjectWriter defines write operations for project data.
type ProjectWriter interface {
	// SaveProject persists a new project.
	SaveProject(ctx context.Context, project domain.Project) error

	// UpdateProjectStatus transitions a project to a new lifecycle status.
	UpdateProjectStatus(ctx context.Context, project domain.Project) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}

// BankAccountReader defines read operations for bank account data.
type BankAccountReader interface {
	// FindBankAccountByProjectID retrieves the bank account owned by a project.
	FindBankAccountByProjectID(ctx context.Context, projectID string) (*domain.BankAccount, error)
}

// BankAccountWriter defines write operations for bank account data.
type BankAccountWriter interface {
	// SaveBankAccount persists a new bank account. It fails with ErrDuplicate
	// when the project already has an account or the (account number, bank
	// name, branch number) triple is taken.
	SaveBankAccount(ctx context.Context, account domain.BankAccount) error
}

// BankAccountRepositoryFacade combines all bank-account repository interfaces.
type BankAccountRepositoryFacade interface {
	BankAccountReader
	BankAccountWriter
}
