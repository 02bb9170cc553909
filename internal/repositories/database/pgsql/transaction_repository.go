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

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const transactionColumns = `
	transaction_id, project_id, bank_account_id, accounting_account_id,
	amount, transaction_date, transaction_type, created_by, created_at,
	digital_signature, data_hash
`

// SaveTransactionWithAudit inserts the transaction and its creation audit
// entry within one database transaction. Either both rows land or neither does.
func (r *PgxTransactionRepository) SaveTransactionWithAudit(ctx context.Context, txn domain.Transaction, entry domain.AuditEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op after a successful commit.

	modelTxn := mapping.ToModelTransaction(txn)
	txnQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, txnQuery,
		modelTxn.TransactionID,
		modelTxn.ProjectID,
		modelTxn.BankAccountID,
		modelTxn.AccountingAccountID,
		modelTxn.Amount,
		modelTxn.TransactionDate,
		modelTxn.TransactionType,
		modelTxn.CreatedBy,
		modelTxn.CreatedAt,
		modelTxn.DigitalSignature,
		modelTxn.DataHash,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", modelTxn.TransactionID, mapPgError(err))
	}

	modelEntry := mapping.ToModelAuditEntry(entry)
	entryQuery := `
		INSERT INTO audit_entries (audit_entry_id, user_id, action, entity_type, entity_id, timestamp, previous_value, new_value, digital_signature, data_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, entryQuery,
		modelEntry.AuditEntryID,
		modelEntry.UserID,
		modelEntry.Action,
		modelEntry.EntityType,
		modelEntry.EntityID,
		modelEntry.Timestamp,
		modelEntry.PreviousValue,
		modelEntry.NewValue,
		modelEntry.DigitalSignature,
		modelEntry.DataHash,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry for transaction %s: %w", modelTxn.TransactionID, mapPgError(err))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return fmt.Errorf("failed to commit transaction %s: %w", modelTxn.TransactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID,
		&m.ProjectID,
		&m.BankAccountID,
		&m.AccountingAccountID,
		&m.Amount,
		&m.TransactionDate,
		&m.TransactionType,
		&m.CreatedBy,
		&m.CreatedAt,
		&m.DigitalSignature,
		&m.DataHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(m)
	return &domainTxn, nil
}

// FindTransactionsByProjectID loads a project's full transaction history in
// chronological order. Balance reconciliation and integrity verification both
// need every row, so there is no pagination here.
func (r *PgxTransactionRepository) FindTransactionsByProjectID(ctx context.Context, projectID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE project_id = $1
		ORDER BY transaction_date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for project %s: %w", projectID, err)
	}
	defer rows.Close()

	modelTxns, err := scanTransactionRows(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

func (r *PgxTransactionRepository) ListTransactionsByProjectID(ctx context.Context, projectID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE project_id = $1
	`
	args := []interface{}{projectID}
	argPos := 2

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		query += fmt.Sprintf(" AND (transaction_date, created_at) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, lastDate, lastCreatedAt)
		argPos += 2
	}

	query += fmt.Sprintf(" ORDER BY transaction_date DESC, created_at DESC LIMIT $%d;", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for project %s: %w", projectID, err)
	}
	defer rows.Close()

	modelTxns, err := scanTransactionRows(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(modelTxns) > limit {
		modelTxns = modelTxns[:limit]
		last := modelTxns[len(modelTxns)-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		nextTokenVal = &token
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nextTokenVal, nil
}

func scanTransactionRows(rows pgx.Rows) ([]models.Transaction, error) {
	modelTxns := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.ProjectID,
			&m.BankAccountID,
			&m.AccountingAccountID,
			&m.Amount,
			&m.TransactionDate,
			&m.TransactionType,
			&m.CreatedBy,
			&m.CreatedAt,
			&m.DigitalSignature,
			&m.DataHash,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return modelTxns, nil
}
