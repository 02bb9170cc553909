package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mcosta87/budget-ledger/internal/core/ports/services"
	"github.com/mcosta87/budget-ledger/internal/dto"
	"github.com/mcosta87/budget-ledger/internal/middleware"
)

// AuditHandler handles audit trail query requests. The trail itself is
// append-only; this handler is read-only.
type AuditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func newAuditHandler(as portssvc.AuditSvcFacade) *AuditHandler {
	return &AuditHandler{auditService: as}
}

// registerAuditRoutes sets up the audit trail routes.
func registerAuditRoutes(rg *gin.RouterGroup, as portssvc.AuditSvcFacade) {
	h := newAuditHandler(as)

	rg.GET("/audit-entries", h.ListAuditEntries)
}

// ListAuditEntries godoc
// @Summary Query the audit trail
// @Description Retrieves audit entries filtered by entity, user, and date
// @Description range, newest first.
// @Tags audit
// @Produce json
// @Param entityType query string false "Filter by entity type (e.g. Transaction, Project)"
// @Param entityID query string false "Filter by entity ID"
// @Param userID query string false "Filter by acting user ID"
// @Param from query string false "Inclusive lower bound timestamp (RFC3339)"
// @Param to query string false "Inclusive upper bound timestamp (RFC3339)"
// @Param limit query int false "Page size (default 20)"
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListAuditEntriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit-entries [get]
func (h *AuditHandler) ListAuditEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAuditEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.auditService.ListAuditEntries(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
