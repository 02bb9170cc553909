package domain

import "regexp"

// accountingCodePattern is the required structural format for accounting
// account codes: digits grouped as NNNN.NN.NNNN.
var accountingCodePattern = regexp.MustCompile(`^\d{4}\.\d{2}\.\d{4}$`)

// ValidAccountingCode reports whether code matches the NNNN.NN.NNNN format.
func ValidAccountingCode(code string) bool {
	return accountingCodePattern.MatchString(code)
}

// AccountingAccount is the categorization dimension for transactions. Its code
// is unique and must match the NNNN.NN.NNNN pattern. An account cannot be
// removed while transactions reference it.
type AccountingAccount struct {
	AccountingAccountID string `json:"accountingAccountID"` // Primary key (UUID)
	Code                string `json:"code"`                // NNNN.NN.NNNN, unique
	Name                string `json:"name"`
	AuditFields
}
