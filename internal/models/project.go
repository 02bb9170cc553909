package models

import "github.com/shopspring/decimal"

// ProjectStatus mirrors the project lifecycle stored in the status column.
type ProjectStatus string

// Project represents a row in the projects table.
type Project struct {
	ProjectID     string          `json:"projectID"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Budget        decimal.Decimal `json:"budget"`
	Status        ProjectStatus   `json:"status"`
	CoordinatorID string          `json:"coordinatorID"`
	AuditFields
}
