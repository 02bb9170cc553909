package pgsql

import (
	"context"
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

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAuditRepository implements portsrepo.AuditRepositoryFacade
var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

const auditEntryColumns = `
	audit_entry_id, user_id, action, entity_type, entity_id, timestamp,
	previous_value, new_value, digital_signature, data_hash
`

// SaveAuditEntry appends one entry. The table carries no UPDATE or DELETE
// statements anywhere in this package; the trail is append-only.
func (r *PgxAuditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	m := mapping.ToModelAuditEntry(entry)
	query := `
		INSERT INTO audit_entries (` + auditEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AuditEntryID,
		m.UserID,
		m.Action,
		m.EntityType,
		m.EntityID,
		m.Timestamp,
		m.PreviousValue,
		m.NewValue,
		m.DigitalSignature,
		m.DataHash,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit entry: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxAuditRepository) ListAuditEntries(ctx context.Context, filter portsrepo.AuditEntryFilter, limit int, nextToken *string) ([]domain.AuditEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + auditEntryColumns + ` FROM audit_entries WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.EntityType != "" {
		query += fmt.Sprintf(" AND entity_type = $%d", argPos)
		args = append(args, filter.EntityType)
		argPos++
	}
	if filter.EntityID != "" {
		query += fmt.Sprintf(" AND entity_id = $%d", argPos)
		args = append(args, filter.EntityID)
		argPos++
	}
	if filter.UserID != "" {
		query += fmt.Sprintf(" AND user_id = $%d", argPos)
		args = append(args, filter.UserID)
		argPos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND timestamp >= $%d", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND timestamp <= $%d", argPos)
		args = append(args, *filter.To)
		argPos++
	}
	if nextToken != nil && *nextToken != "" {
		lastTimestamp, err := pagination.DecodeDateBasedToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		query += fmt.Sprintf(" AND timestamp < $%d", argPos)
		args = append(args, lastTimestamp)
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY timestamp DESC LIMIT $%d;", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer rows.Close()

	modelEntries, err := scanAuditEntryRows(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(modelEntries) > limit {
		modelEntries = modelEntries[:limit]
		token := pagination.EncodeDateBasedToken(modelEntries[len(modelEntries)-1].Timestamp)
		nextTokenVal = &token
	}

	return mapping.ToDomainAuditEntrySlice(modelEntries), nextTokenVal, nil
}

func (r *PgxAuditRepository) FindAuditEntriesByEntity(ctx context.Context, entityType, entityID string) ([]domain.AuditEntry, error) {
	query := `
		SELECT ` + auditEntryColumns + `
		FROM audit_entries
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY timestamp ASC;
	`
	rows, err := r.Pool.Query(ctx, query, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries for %s %s: %w", entityType, entityID, err)
	}
	defer rows.Close()

	modelEntries, err := scanAuditEntryRows(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainAuditEntrySlice(modelEntries), nil
}

// FindAuditEntriesByProjectID loads every audit entry derived from a project's
// transactions by joining through the transactions table, plus the project's
// own entries.
func (r *PgxAuditRepository) FindAuditEntriesByProjectID(ctx context.Context, projectID string) ([]domain.AuditEntry, error) {
	query := `
		SELECT ` + auditEntryColumns + `
		FROM audit_entries a
		WHERE (a.entity_type = 'Transaction' AND a.entity_id IN (
			SELECT transaction_id FROM transactions WHERE project_id = $1
		))
		OR (a.entity_type = 'Project' AND a.entity_id = $1)
		ORDER BY a.timestamp ASC;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries for project %s: %w", projectID, err)
	}
	defer rows.Close()

	modelEntries, err := scanAuditEntryRows(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainAuditEntrySlice(modelEntries), nil
}

func scanAuditEntryRows(rows pgx.Rows) ([]models.AuditEntry, error) {
	modelEntries := []models.AuditEntry{}
	for rows.Next() {
		var m models.AuditEntry
		if err := rows.Scan(
			&m.AuditEntryID,
			&m.UserID,
			&m.Action,
			&m.EntityType,
			&m.EntityID,
			&m.Timestamp,
			&m.PreviousValue,
			&m.NewValue,
			&m.DigitalSignature,
			&m.DataHash,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry row: %w", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating audit entry rows: %w", rows.Err())
	}
	return modelEntries, nil
}
