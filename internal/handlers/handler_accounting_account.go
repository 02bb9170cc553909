package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mcosta87/budget-ledger/internal/core/ports/services"
	"github.com/mcosta87/budget-ledger/internal/dto"
	"github.com/mcosta87/budget-ledger/internal/middleware"
)

// AccountingAccountHandler handles accounting categorization account requests.
type AccountingAccountHandler struct {
	accountingService portssvc.AccountingAccountSvcFacade
}

func newAccountingAccountHandler(as portssvc.AccountingAccountSvcFacade) *AccountingAccountHandler {
	return &AccountingAccountHandler{accountingService: as}
}

// registerAccountingAccountRoutes sets up the accounting account routes.
func registerAccountingAccountRoutes(rg *gin.RouterGroup, as portssvc.AccountingAccountSvcFacade) {
	h := newAccountingAccountHandler(as)

	accounts := rg.Group("/accounting-accounts")
	{
		accounts.POST("", h.CreateAccountingAccount)
		accounts.GET("", h.ListAccountingAccounts)
		accounts.GET("/:accountingAccountID", h.GetAccountingAccount)
		accounts.DELETE("/:accountingAccountID", h.DeleteAccountingAccount)
	}
}

// CreateAccountingAccount godoc
// @Summary Create an accounting account
// @Description Registers a categorization account. The code must follow the
// @Description NNNN.NN.NNNN format and be unique.
// @Tags accounting-accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountingAccountRequest true "Account details"
// @Success 201 {object} dto.AccountingAccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounting-accounts [post]
func (h *AccountingAccountHandler) CreateAccountingAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateAccountingAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.accountingService.CreateAccountingAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountingAccountResponse(account))
}

// GetAccountingAccount godoc
// @Summary Get an accounting account
// @Description Retrieves an accounting account by ID.
// @Tags accounting-accounts
// @Produce json
// @Param accountingAccountID path string true "Accounting account ID"
// @Success 200 {object} dto.AccountingAccountResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounting-accounts/{accountingAccountID} [get]
func (h *AccountingAccountHandler) GetAccountingAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountingAccountID := c.Param("accountingAccountID")

	account, err := h.accountingService.GetAccountingAccountByID(c.Request.Context(), accountingAccountID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountingAccountResponse(account))
}

// ListAccountingAccounts godoc
// @Summary List accounting accounts
// @Description Retrieves a paginated list of accounting accounts.
// @Tags accounting-accounts
// @Produce json
// @Param limit query int false "Page size (default 20)"
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListAccountingAccountsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounting-accounts [get]
func (h *AccountingAccountHandler) ListAccountingAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAccountingAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.accountingService.ListAccountingAccounts(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteAccountingAccount godoc
// @Summary Delete an accounting account
// @Description Removes an accounting account. Fails with 409 while
// @Description transactions reference it.
// @Tags accounting-accounts
// @Produce json
// @Param accountingAccountID path string true "Accounting account ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounting-accounts/{accountingAccountID} [delete]
func (h *AccountingAccountHandler) DeleteAccountingAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountingAccountID := c.Param("accountingAccountID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.accountingService.DeleteAccountingAccount(c.Request.Context(), accountingAccountID, userID); err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
