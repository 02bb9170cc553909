package services

import (
	"context"

	"github.com/mcosta87/budget-ledger/internal/core/domain"
	"github.com/mcosta87/budget-ledger/internal/dto"
)

// ProjectSvcFacade defines project lifecycle operations.
type ProjectSvcFacade interface {
	// CreateProject creates a project with the creating user as coordinator.
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error)

	// GetProjectByID retrieves a project, including its bank account when set.
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects retrieves a paginated list of projects.
	ListProjects(ctx context.Context, params dto.ListProjectsParams) (*dto.ListProjectsResponse, error)

	// UpdateProjectStatus transitions a project's lifecycle status. Only the
	// coordinator may do this. The change is audited.
	UpdateProjectStatus(ctx context.Context, projectID string, req dto.UpdateProjectStatusRequest, requestingUserID string) (*domain.Project, error)
}

// BankAccountSvcFacade defines bank account operations. A project owns at most
// one bank account.
type BankAccountSvcFacade interface {
	// CreateBankAccount attaches a bank account to a project. Only the
	// coordinator may do this; the (number, bank, branch) triple must be
	// unique system-wide. The creation is audited.
	CreateBankAccount(ctx context.Context, projectID string, req dto.CreateBankAccountRequest, requestingUserID string) (*domain.BankAccount, error)

	// GetBankAccountByProjectID retrieves the project's bank account.
	GetBankAccountByProjectID(ctx context.Context, projectID string) (*domain.BankAccount, error)
}
