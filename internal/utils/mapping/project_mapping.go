package mapping

import (
	"github.com/mcosta87/budget-ledger/internal/core/domain"
	"github.com/mcosta87/budget-ledger/internal/models"
)

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:     d.ProjectID,
		Name:          d.Name,
		Description:   d.Description,
		Budget:        d.Budget,
		Status:        models.ProjectStatus(d.Status),
		CoordinatorID: d.CoordinatorID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProject converts a model Project to a domain Project. The bank
// account, if any, is attached separately by the repository.
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:     m.ProjectID,
		Name:          m.Name,
		Description:   m.Description,
		Budget:        m.Budget,
		Status:        domain.ProjectStatus(m.Status),
		CoordinatorID: m.CoordinatorID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBankAccount converts a domain BankAccount to a model BankAccount
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		BankAccountID: d.BankAccountID,
		ProjectID:     d.ProjectID,
		AccountNumber: d.AccountNumber,
		BankName:      d.BankName,
		BranchNumber:  d.BranchNumber,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankAccount converts a model BankAccount to a domain BankAccount
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		BankAccountID: m.BankAccountID,
		ProjectID:     m.ProjectID,
		AccountNumber: m.AccountNumber,
		BankName:      m.BankName,
		BranchNumber:  m.BranchNumber,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
