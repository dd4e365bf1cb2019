package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type ledgerHandler struct {
	ledgerService    portssvc.LedgerReaderSvc
	reportingService portssvc.ReportingService
}

// RegisterLedgerRoutes registers the account ledger and the trial balance report.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerReaderSvc, reportingService portssvc.ReportingService) {
	h := &ledgerHandler{ledgerService: ledgerService, reportingService: reportingService}

	rg.GET("/accounts/:id/ledger", h.getLedger)
	rg.GET("/reports/trial-balance", h.getTrialBalance)
}

// getLedger godoc
// @Summary Get an account ledger
// @Description Posted movements of the account with running balance
// @Tags ledger
// @Produce json
// @Param id path string true "Account ID"
// @Param dateFrom query string false "YYYY-MM-DD"
// @Param dateTo query string false "YYYY-MM-DD"
// @Success 200 {object} dto.AccountLedgerResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{id}/ledger [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	tenantID, _, ok := actor(c)
	if !ok {
		return
	}
	var params dto.LedgerParams
	if !bindQuery(c, &params) {
		return
	}
	from, to, err := params.Range()
	if err != nil {
		respondError(c, err, "retrieve ledger")
		return
	}

	ledger, err := h.ledgerService.GetLedgerEntries(c.Request.Context(), tenantID, c.Param("id"), from, to)
	if err != nil {
		respondError(c, err, "retrieve ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountLedgerResponse(ledger))
}

// getTrialBalance godoc
// @Summary Get the trial balance
// @Description Posted totals per account up to asOf (defaults to today)
// @Tags reports
// @Produce json
// @Param asOf query string false "YYYY-MM-DD"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *ledgerHandler) getTrialBalance(c *gin.Context) {
	tenantID, _, ok := actor(c)
	if !ok {
		return
	}
	var params dto.TrialBalanceParams
	if !bindQuery(c, &params) {
		return
	}
	asOf := time.Now().UTC().Truncate(24 * time.Hour)
	if params.AsOf != "" {
		parsed, err := dto.ParseDate(params.AsOf)
		if err != nil {
			respondError(c, fmt.Errorf("%w: invalid asOf", apperrors.ErrValidation), "build trial balance")
			return
		}
		asOf = parsed
	}

	tb, err := h.reportingService.TrialBalance(c.Request.Context(), tenantID, asOf)
	if err != nil {
		respondError(c, err, "build trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb))
}
