package models

// AccountingAccount represents a row in the accounting_accounts table.
type AccountingAccount struct {
	AccountingAccountID string `json:"accountingAccountID"`
	Code                string `json:"code"`
	Name                string `json:"name"`
	AuditFields
}
