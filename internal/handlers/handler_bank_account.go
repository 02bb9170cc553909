package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mcosta87/budget-ledger/internal/core/ports/services"
	"github.com/mcosta87/budget-ledger/internal/dto"
	"github.com/mcosta87/budget-ledger/internal/middleware"
)

// BankAccountHandler handles per-project bank account requests.
type BankAccountHandler struct {
	bankAccountService portssvc.BankAccountSvcFacade
}

func newBankAccountHandler(bs portssvc.BankAccountSvcFacade) *BankAccountHandler {
	return &BankAccountHandler{bankAccountService: bs}
}

// registerBankAccountRoutes sets up the bank account routes under projects.
func registerBankAccountRoutes(rg *gin.RouterGroup, bs portssvc.BankAccountSvcFacade) {
	h := newBankAccountHandler(bs)

	projects := rg.Group("/projects/:projectID")
	{
		projects.POST("/bank-account", h.CreateBankAccount)
		projects.GET("/bank-account", h.GetBankAccount)
	}
}

// CreateBankAccount godoc
// @Summary Attach a bank account to a project
// @Description Creates the project's bank account. Coordinator only; a project
// @Description holds at most one account.
// @Tags bank-accounts
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Param account body dto.CreateBankAccountRequest true "Bank account details"
// @Success 201 {object} dto.BankAccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{projectID}/bank-account [post]
func (h *BankAccountHandler) CreateBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.bankAccountService.CreateBankAccount(c.Request.Context(), projectID, req, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(account))
}

// GetBankAccount godoc
// @Summary Get a project's bank account
// @Description Retrieves the bank account attached to a project.
// @Tags bank-accounts
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{projectID}/bank-account [get]
func (h *BankAccountHandler) GetBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	account, err := h.bankAccountService.GetBankAccountByProjectID(c.Request.Context(), projectID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}
