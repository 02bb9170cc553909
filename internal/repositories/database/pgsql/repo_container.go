package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/mcosta87/budget-ledger/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProjectRepo:           newPgxProjectRepository(dbPool),
		BankAccountRepo:       newPgxBankAccountRepository(dbPool),
		AccountingAccountRepo: newPgxAccountingAccountRepository(dbPool),
		TransactionRepo:       newPgxTransactionRepository(dbPool),
		AuditRepo:             newPgxAuditRepository(dbPool),
		UserRepo:              newPgxUserRepository(dbPool),
	}
}
