package models

// BankAccount represents a row in the bank_accounts table. The project link
// and the (account number, bank name, branch number) triple are both unique.
type BankAccount struct {
	BankAccountID string `json:"bankAccountID"`
	ProjectID     string `json:"projectID"`
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
	BranchNumber  string `json:"branchNumber"`
	AuditFields
}
