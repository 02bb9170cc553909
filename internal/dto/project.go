package dto

import (
	"time"

	"github.com/mcosta87/budget-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest defines the payload to create a project. The creating
// user becomes its coordinator.
type CreateProjectRequest struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	Budget      decimal.Decimal `json:"budget" binding:"required"`
}

// UpdateProjectStatusRequest transitions a project's lifecycle status.
type UpdateProjectStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=NOT_STARTED INITIATED IN_PROGRESS COMPLETED CANCELLED"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ProjectID     string               `json:"projectID"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	Budget        decimal.Decimal      `json:"budget"`
	Status        string               `json:"status"`
	CoordinatorID string               `json:"coordinatorID"`
	BankAccount   *BankAccountResponse `json:"bankAccount,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
}

// ListProjectsParams holds pagination parameters for listing projects.
type ListProjectsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListProjectsResponse is a paginated page of projects.
type ListProjectsResponse struct {
	Projects  []ProjectResponse `json:"projects"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// CreateBankAccountRequest defines the payload to attach a bank account to a
// project. A project may hold at most one.
type CreateBankAccountRequest struct {
	AccountNumber string `json:"accountNumber" binding:"required,max=30"`
	BankName      string `json:"bankName" binding:"required,max=100"`
	BranchNumber  string `json:"branchNumber" binding:"required,max=20"`
}

// BankAccountResponse defines the data returned for a bank account.
type BankAccountResponse struct {
	BankAccountID string    `json:"bankAccountID"`
	ProjectID     string    `json:"projectID"`
	AccountNumber string    `json:"accountNumber"`
	BankName      string    `json:"bankName"`
	BranchNumber  string    `json:"branchNumber"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToBankAccountResponse converts a domain.BankAccount to its response DTO.
func ToBankAccountResponse(acc *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		BankAccountID: acc.BankAccountID,
		ProjectID:     acc.ProjectID,
		AccountNumber: acc.AccountNumber,
		BankName:      acc.BankName,
		BranchNumber:  acc.BranchNumber,
		CreatedAt:     acc.CreatedAt,
	}
}

// ToProjectResponse converts a domain.Project to its response DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	resp := ProjectResponse{
		ProjectID:     p.ProjectID,
		Name:          p.Name,
		Description:   p.Description,
		Budget:        p.Budget,
		Status:        string(p.Status),
		CoordinatorID: p.CoordinatorID,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
	}
	if p.BankAccount != nil {
		ba := ToBankAccountResponse(p.BankAccount)
		resp.BankAccount = &ba
	}
	return resp
}

// ToProjectResponses converts a slice of domain projects.
func ToProjectResponses(projects []domain.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = ToProjectResponse(&projects[i])
	}
	return responses
}
