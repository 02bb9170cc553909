package mapping

import (
	"github.com/mcosta87/budget-ledger/internal/core/domain"
	"github.com/mcosta87/budget-ledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:       d.TransactionID,
		ProjectID:           d.ProjectID,
		BankAccountID:       d.BankAccountID,
		AccountingAccountID: d.AccountingAccountID,
		Amount:              d.Amount,
		TransactionDate:     d.TransactionDate,
		TransactionType:     models.TransactionType(d.TransactionType),
		CreatedBy:           d.CreatedBy,
		CreatedAt:           d.CreatedAt,
		DigitalSignature:    d.DigitalSignature,
		DataHash:            d.DataHash,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:       m.TransactionID,
		ProjectID:           m.ProjectID,
		BankAccountID:       m.BankAccountID,
		AccountingAccountID: m.AccountingAccountID,
		Amount:              m.Amount,
		TransactionDate:     m.TransactionDate,
		TransactionType:     domain.TransactionType(m.TransactionType),
		CreatedBy:           m.CreatedBy,
		CreatedAt:           m.CreatedAt,
		DigitalSignature:    m.DigitalSignature,
		DataHash:            m.DataHash,
	}
}

// ToDomainTransactionSlice converts a slice of model transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
