package domain

// BankAccount belongs to exactly one Project (cascade lifecycle). The triple
// (AccountNumber, BankName, BranchNumber) is unique system-wide.
type BankAccount struct {
	BankAccountID string `json:"bankAccountID"` // Primary key (UUID)
	ProjectID     string `json:"projectID"`     // FK -> Project, unique (one account per project)
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
	BranchNumber  string `json:"branchNumber"`
	AuditFields
}
