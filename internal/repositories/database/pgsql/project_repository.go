package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcosta87/budget-ledger/internal/apperrors"
	"github.com/mcosta87/budget-ledger/internal/core/domain"
	portsrepo "github.com/mcosta87/budget-ledger/internal/core/ports/repositories"
	"github.com/mcosta87/budget-ledger/internal/models"
	"github.com/mcosta87/budget-ledger/internal/utils/mapping"
	"github.com/mcosta87/budget-ledger/internal/utils/pagination"
)

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepositoryFacade
var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	modelProject := mapping.ToModelProject(project)
	query := `
		INSERT INTO projects (project_id, name, description, budget, status, coordinator_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelProject.ProjectID,
		modelProject.Name,
		modelProject.Description,
		modelProject.Budget,
		modelProject.Status,
		modelProject.CoordinatorID,
		modelProject.CreatedAt,
		modelProject.CreatedBy,
		modelProject.LastUpdatedAt,
		modelProject.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save project: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `
		SELECT p.project_id, p.name, p.description, p.budget, p.status, p.coordinator_id,
		       p.created_at, p.created_by, p.last_updated_at, p.last_updated_by,
		       b.bank_account_id, b.account_number, b.bank_name, b.branch_number,
		       b.created_at, b.created_by, b.last_updated_at, b.last_updated_by
		FROM projects p
		LEFT JOIN bank_accounts b ON b.project_id = p.project_id
		WHERE p.project_id = $1;
	`
	var modelProject models.Project
	var bankAccountID, accountNumber, bankName, branchNumber *string
	var bankAccount models.BankAccount

	err := r.Pool.QueryRow(ctx, query, projectID).Scan(
		&modelProject.ProjectID,
		&modelProject.Name,
		&modelProject.Description,
		&modelProject.Budget,
		&modelProject.Status,
		&modelProject.CoordinatorID,
		&modelProject.CreatedAt,
		&modelProject.CreatedBy,
		&modelProject.LastUpdatedAt,
		&modelProject.LastUpdatedBy,
		&bankAccountID,
		&accountNumber,
		&bankName,
		&branchNumber,
		&bankAccount.CreatedAt,
		&bankAccount.CreatedBy,
		&bankAccount.LastUpdatedAt,
		&bankAccount.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID %s: %w", projectID, err)
	}

	domainProject := mapping.ToDomainProject(modelProject)
	if bankAccountID != nil {
		bankAccount.BankAccountID = *bankAccountID
		bankAccount.ProjectID = modelProject.ProjectID
		bankAccount.AccountNumber = *accountNumber
		bankAccount.BankName = *bankName
		bankAccount.BranchNumber = *branchNumber
		domainBankAccount := mapping.ToDomainBankAccount(bankAccount)
		domainProject.BankAccount = &domainBankAccount
	}
	return &domainProject, nil
}

func (r *PgxProjectRepository) ListProjects(ctx context.Context, limit int, nextToken *string) ([]domain.Project, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT project_id, name, description, budget, status, coordinator_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM projects
	`
	args := []interface{}{}
	argPos := 1

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, err := pagination.DecodeDateBasedToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		query += fmt.Sprintf(" WHERE created_at < $%d", argPos)
		args = append(args, lastCreatedAt)
		argPos++
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d;", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	modelProjects := []models.Project{}
	for rows.Next() {
		var m models.Project
		if err := rows.Scan(
			&m.ProjectID,
			&m.Name,
			&m.Description,
			&m.Budget,
			&m.Status,
			&m.CoordinatorID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		modelProjects = append(modelProjects, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating project rows: %w", rows.Err())
	}

	var nextTokenVal *string
	if len(modelProjects) > limit {
		modelProjects = modelProjects[:limit]
		token := pagination.EncodeDateBasedToken(modelProjects[len(modelProjects)-1].CreatedAt)
		nextTokenVal = &token
	}

	domainProjects := make([]domain.Project, len(modelProjects))
	for i, m := range modelProjects {
		domainProjects[i] = mapping.ToDomainProject(m)
	}
	return domainProjects, nextTokenVal, nil
}

func (r *PgxProjectRepository) UpdateProjectStatus(ctx context.Context, project domain.Project) error {
	query := `
		UPDATE projects
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE project_id = $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		string(project.Status),
		project.LastUpdatedAt,
		project.LastUpdatedBy,
		project.ProjectID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("project %s not found: %w", project.ProjectID, apperrors.ErrNotFound)
	}
	return nil
}
