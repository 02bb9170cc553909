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
)

type PgxBankAccountRepository struct {
	BaseRepository
}

func newPgxBankAccountRepository(pool *pgxpool.Pool) portsrepo.BankAccountRepositoryFacade {
	return &PgxBankAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBankAccountRepository implements portsrepo.BankAccountRepositoryFacade
var _ portsrepo.BankAccountRepositoryFacade = (*PgxBankAccountRepository)(nil)

// SaveBankAccount inserts a bank account. The unique index on project_id and
// the unique index on (account_number, bank_name, branch_number) both surface
// as ErrDuplicate.
func (r *PgxBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	modelAccount := mapping.ToModelBankAccount(account)
	query := `
		INSERT INTO bank_accounts (bank_account_id, project_id, account_number, bank_name, branch_number, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAccount.BankAccountID,
		modelAccount.ProjectID,
		modelAccount.AccountNumber,
		modelAccount.BankName,
		modelAccount.BranchNumber,
		modelAccount.CreatedAt,
		modelAccount.CreatedBy,
		modelAccount.LastUpdatedAt,
		modelAccount.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save bank account: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxBankAccountRepository) FindBankAccountByProjectID(ctx context.Context, projectID string) (*domain.BankAccount, error) {
	query := `
		SELECT bank_account_id, project_id, account_number, bank_name, branch_number,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM bank_accounts
		WHERE project_id = $1;
	`
	var m models.BankAccount
	err := r.Pool.QueryRow(ctx, query, projectID).Scan(
		&m.BankAccountID,
		&m.ProjectID,
		&m.AccountNumber,
		&m.BankName,
		&m.BranchNumber,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank account for project %s: %w", projectID, err)
	}

	domainAccount := mapping.ToDomainBankAccount(m)
	return &domainAccount, nil
}
