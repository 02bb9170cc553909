package mapping

import (
	"github.com/mcosta87/budget-ledger/internal/core/domain"
	"github.com/mcosta87/budget-ledger/internal/models"
)

// ToModelAccountingAccount converts a domain AccountingAccount to a model AccountingAccount
func ToModelAccountingAccount(d domain.AccountingAccount) models.AccountingAccount {
	return models.AccountingAccount{
		AccountingAccountID: d.AccountingAccountID,
		Code:                d.Code,
		Name:                d.Name,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccountingAccount converts a model AccountingAccount to a domain AccountingAccount
func ToDomainAccountingAccount(m models.AccountingAccount) domain.AccountingAccount {
	return domain.AccountingAccount{
		AccountingAccountID: m.AccountingAccountID,
		Code:                m.Code,
		Name:                m.Name,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountingAccountSlice converts a slice of model accounting accounts
func ToDomainAccountingAccountSlice(ms []models.AccountingAccount) []domain.AccountingAccount {
	ds := make([]domain.AccountingAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccountingAccount(m)
	}
	return ds
}
