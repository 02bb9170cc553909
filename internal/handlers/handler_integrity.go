package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mcosta87/budget-ledger/internal/core/ports/services"
	"github.com/mcosta87/budget-ledger/internal/middleware"
)

// IntegrityHandler handles tamper-detection report requests.
type IntegrityHandler struct {
	integrityService portssvc.IntegritySvcFacade
}

func newIntegrityHandler(is portssvc.IntegritySvcFacade) *IntegrityHandler {
	return &IntegrityHandler{integrityService: is}
}

// registerIntegrityRoutes sets up the integrity report route.
func registerIntegrityRoutes(rg *gin.RouterGroup, is portssvc.IntegritySvcFacade) {
	h := newIntegrityHandler(is)

	rg.GET("/projects/:projectID/integrity-report", h.GetIntegrityReport)
}

// GetIntegrityReport godoc
// @Summary Verify a project's record integrity
// @Description Recomputes the hashes of the project's transactions and derived
// @Description audit entries and reports any records that no longer match.
// @Tags integrity
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} domain.IntegrityReport
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{projectID}/integrity-report [get]
func (h *IntegrityHandler) GetIntegrityReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	report, err := h.integrityService.GenerateProjectIntegrityReport(c.Request.Context(), projectID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	if !report.IsValid {
		// Security event: tampered records detected in stored data.
		logger.Error("Integrity report found tampered records",
			slog.String("projectID", projectID),
			slog.Int("tamperedTransactions", len(report.TamperedTransactionIDs)),
			slog.Int("tamperedAuditEntries", len(report.TamperedAuditEntryIDs)),
		)
	}

	c.JSON(http.StatusOK, report)
}
