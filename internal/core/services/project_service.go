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
	"github.com/shopspring/decimal"
)

var (
	ErrBudgetNotPositive = errors.New("project budget must be positive")
	ErrInvalidStatus     = errors.New("invalid project status")
)

// projectService provides project lifecycle operations.
type projectService struct {
	projectRepo portsrepo.ProjectRepositoryFacade
	auditSvc    portssvc.AuditSvcFacade
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.ProjectSvcFacade {
	return &projectService{
		projectRepo: projectRepo,
		auditSvc:    auditSvc,
	}
}

// Ensure projectService implements the portssvc.ProjectSvcFacade interface
var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// CreateProject creates a project with the creating user as coordinator.
func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Budget.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrBudgetNotPositive)
	}

	now := time.Now().UTC()
	project := domain.Project{
		ProjectID:     uuid.NewString(),
		Name:          req.Name,
		Description:   req.Description,
		Budget:        req.Budget.Round(2),
		Status:        domain.NotStarted,
		CoordinatorID: creatorUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		logger.Error("Failed to save project", "error", err)
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	if _, err := s.recordProjectAudit(ctx, creatorUserID, domain.AuditActionCreate, project.ProjectID, nil, &project); err != nil {
		logger.Error("Failed to audit project creation", "error", err, "project_id", project.ProjectID)
		return nil, err
	}

	logger.Info("Project created", "project_id", project.ProjectID)
	return &project, nil
}

// GetProjectByID retrieves a project, including its bank account when set.
func (s *projectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}
	return project, nil
}

// ListProjects retrieves a paginated list of projects.
func (s *projectService) ListProjects(ctx context.Context, params dto.ListProjectsParams) (*dto.ListProjectsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	projects, nextToken, err := s.projectRepo.ListProjects(ctx, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list projects", "error", err)
		return nil, fmt.Errorf("failed to retrieve projects: %w", err)
	}

	return &dto.ListProjectsResponse{
		Projects:  dto.ToProjectResponses(projects),
		NextToken: nextToken,
	}, nil
}

// UpdateProjectStatus transitions a project's lifecycle status. Only the
// coordinator may do this; the transition is audited with before/after
// snapshots.
func (s *projectService) UpdateProjectStatus(ctx context.Context, projectID string, req dto.UpdateProjectStatusRequest, requestingUserID string) (*domain.Project, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	newStatus := domain.ProjectStatus(req.Status)
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("%w: %s %q", apperrors.ErrValidation, ErrInvalidStatus, req.Status)
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	if project.CoordinatorID != requestingUserID {
		logger.Warn("Status change attempted by non-coordinator", "project_id", projectID)
		return nil, fmt.Errorf("%w: only the project coordinator may change its status", apperrors.ErrForbidden)
	}

	previous := *project

	project.Status = newStatus
	project.LastUpdatedAt = time.Now().UTC()
	project.LastUpdatedBy = requestingUserID

	if err := s.projectRepo.UpdateProjectStatus(ctx, *project); err != nil {
		logger.Error("Failed to update project status", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to update project status: %w", err)
	}

	if _, err := s.recordProjectAudit(ctx, requestingUserID, domain.AuditActionUpdate, projectID, &previous, project); err != nil {
		logger.Error("Failed to audit project status change", "error", err, "project_id", projectID)
		return nil, err
	}

	logger.Info("Project status updated", "project_id", projectID, "status", newStatus)
	return project, nil
}

// recordProjectAudit serializes project snapshots and appends an audit entry.
func (s *projectService) recordProjectAudit(ctx context.Context, userID, action, projectID string, previous, current *domain.Project) (*domain.AuditEntry, error) {
	var prevSnapshot, newSnapshot *string
	if previous != nil {
		data, err := json.Marshal(previous)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize project snapshot: %w", err)
		}
		str := string(data)
		prevSnapshot = &str
	}
	if current != nil {
		data, err := json.Marshal(current)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize project snapshot: %w", err)
		}
		str := string(data)
		newSnapshot = &str
	}
	return s.auditSvc.RecordAction(ctx, userID, action, "Project", projectID, prevSnapshot, newSnapshot)
}

// bankAccountService provides bank account operations on behalf of projects.
type bankAccountService struct {
	bankAccountRepo portsrepo.BankAccountRepositoryFacade
	projectRepo     portsrepo.ProjectRepositoryFacade
	auditSvc        portssvc.AuditSvcFacade
}

// NewBankAccountService creates a new BankAccountService.
func NewBankAccountService(
	bankAccountRepo portsrepo.BankAccountRepositoryFacade,
	projectRepo portsrepo.ProjectRepositoryFacade,
	auditSvc portssvc.AuditSvcFacade,
) portssvc.BankAccountSvcFacade {
	return &bankAccountService{
		bankAccountRepo: bankAccountRepo,
		projectRepo:     projectRepo,
		auditSvc:        auditSvc,
	}
}

// Ensure bankAccountService implements the portssvc.BankAccountSvcFacade interface
var _ portssvc.BankAccountSvcFacade = (*bankAccountService)(nil)

// CreateBankAccount attaches a bank account to a project. The repository
// enforces uniqueness of both the project link and the (number, bank, branch)
// triple and surfaces violations as ErrDuplicate.
func (s *bankAccountService) CreateBankAccount(ctx context.Context, projectID string, req dto.CreateBankAccountRequest, requestingUserID string) (*domain.BankAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	if project.CoordinatorID != requestingUserID {
		logger.Warn("Bank account creation attempted by non-coordinator", "project_id", projectID)
		return nil, fmt.Errorf("%w: only the project coordinator may attach a bank account", apperrors.ErrForbidden)
	}

	if project.BankAccount != nil {
		return nil, fmt.Errorf("%w: project %s already has a bank account", apperrors.ErrDuplicate, projectID)
	}

	now := time.Now().UTC()
	account := domain.BankAccount{
		BankAccountID: uuid.NewString(),
		ProjectID:     projectID,
		AccountNumber: req.AccountNumber,
		BankName:      req.BankName,
		BranchNumber:  req.BranchNumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.bankAccountRepo.SaveBankAccount(ctx, account); err != nil {
		logger.Error("Failed to save bank account", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to save bank account: %w", err)
	}

	snapshot, err := json.Marshal(account)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize bank account snapshot: %w", err)
	}
	snapStr := string(snapshot)
	if _, err := s.auditSvc.RecordAction(ctx, requestingUserID, domain.AuditActionCreate, "BankAccount", account.BankAccountID, nil, &snapStr); err != nil {
		logger.Error("Failed to audit bank account creation", "error", err, "bank_account_id", account.BankAccountID)
		return nil, err
	}

	logger.Info("Bank account created", "bank_account_id", account.BankAccountID, "project_id", projectID)
	return &account, nil
}

// GetBankAccountByProjectID retrieves the project's bank account.
func (s *bankAccountService) GetBankAccountByProjectID(ctx context.Context, projectID string) (*domain.BankAccount, error) {
	account, err := s.bankAccountRepo.FindBankAccountByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find bank account for project %s: %w", projectID, err)
	}
	return account, nil
}
