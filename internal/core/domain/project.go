package domain

import "github.com/shopspring/decimal"

// ProjectStatus is the fixed lifecycle of a project.
type ProjectStatus string

const (
	NotStarted ProjectStatus = "NOT_STARTED"
	Initiated  ProjectStatus = "INITIATED"
	InProgress ProjectStatus = "IN_PROGRESS"
	Completed  ProjectStatus = "COMPLETED"
	Cancelled  ProjectStatus = "CANCELLED"
)

// AcceptsTransactions reports whether new transactions may be recorded against
// a project in this status. Completed and cancelled projects are closed books.
func (s ProjectStatus) AcceptsTransactions() bool {
	return s != Completed && s != Cancelled
}

// IsValid reports whether s is one of the known lifecycle statuses.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case NotStarted, Initiated, InProgress, Completed, Cancelled:
		return true
	}
	return false
}

// Project owns at most one BankAccount and has exactly one coordinator. Only
// the coordinator may record transactions against it.
type Project struct {
	ProjectID     string          `json:"projectID"` // Primary key (UUID)
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Budget        decimal.Decimal `json:"budget"`
	Status        ProjectStatus   `json:"status"`
	CoordinatorID string          `json:"coordinatorID"` // UserID reference
	BankAccount   *BankAccount    `json:"bankAccount,omitempty"`
	AuditFields
}
