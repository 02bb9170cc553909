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

type PgxAccountingAccountRepository struct {
	BaseRepository
}

func newPgxAccountingAccountRepository(pool *pgxpool.Pool) portsrepo.AccountingAccountRepositoryFacade {
	return &PgxAccountingAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountingAccountRepository implements portsrepo.AccountingAccountRepositoryFacade
var _ portsrepo.AccountingAccountRepositoryFacade = (*PgxAccountingAccountRepository)(nil)

func (r *PgxAccountingAccountRepository) SaveAccountingAccount(ctx context.Context, account domain.AccountingAccount) error {
	m := mapping.ToModelAccountingAccount(account)
	query := `
		INSERT INTO accounting_accounts (accounting_account_id, code, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountingAccountID,
		m.Code,
		m.Name,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save accounting account: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxAccountingAccountRepository) FindAccountingAccountByID(ctx context.Context, accountingAccountID string) (*domain.AccountingAccount, error) {
	query := `
		SELECT accounting_account_id, code, name, created_at, created_by, last_updated_at, last_updated_by
		FROM accounting_accounts
		WHERE accounting_account_id = $1;
	`
	var m models.AccountingAccount
	err := r.Pool.QueryRow(ctx, query, accountingAccountID).Scan(
		&m.AccountingAccountID,
		&m.Code,
		&m.Name,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find accounting account by ID %s: %w", accountingAccountID, err)
	}

	domainAccount := mapping.ToDomainAccountingAccount(m)
	return &domainAccount, nil
}

func (r *PgxAccountingAccountRepository) ListAccountingAccounts(ctx context.Context, limit int, nextToken *string) ([]domain.AccountingAccount, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT accounting_account_id, code, name, created_at, created_by, last_updated_at, last_updated_by
		FROM accounting_accounts
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

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d;", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query accounting accounts: %w", err)
	}
	defer rows.Close()

	modelAccounts := []models.AccountingAccount{}
	for rows.Next() {
		var m models.AccountingAccount
		if err := rows.Scan(
			&m.AccountingAccountID,
			&m.Code,
			&m.Name,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan accounting account row: %w", err)
		}
		modelAccounts = append(modelAccounts, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating accounting account rows: %w", rows.Err())
	}

	var nextTokenVal *string
	if len(modelAccounts) > limit {
		modelAccounts = modelAccounts[:limit]
		token := pagination.EncodeDateBasedToken(modelAccounts[len(modelAccounts)-1].CreatedAt)
		nextTokenVal = &token
	}

	return mapping.ToDomainAccountingAccountSlice(modelAccounts), nextTokenVal, nil
}

// DeleteAccountingAccount removes an accounting account. The transactions
// table references accounting_account_id with ON DELETE RESTRICT, so deleting
// an account that is still in use fails with a foreign key violation, which
// mapPgError surfaces as ErrConflict.
func (r *PgxAccountingAccountRepository) DeleteAccountingAccount(ctx context.Context, accountingAccountID string) error {
	query := `DELETE FROM accounting_accounts WHERE accounting_account_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, accountingAccountID)
	if err != nil {
		return fmt.Errorf("failed to delete accounting account %s: %w", accountingAccountID, mapPgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("accounting account %s not found: %w", accountingAccountID, apperrors.ErrNotFound)
	}
	return nil
}
