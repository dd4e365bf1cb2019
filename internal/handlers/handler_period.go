package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/SscSPs/general_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

// RegisterPeriodRoutes registers routes for accounting periods.
func RegisterPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := &periodHandler{periodService: periodService}

	periods := rg.Group("/periods")
	{
		periods.GET("", h.listPeriods)
		periods.POST("", h.openPeriod)
		periods.GET("/:id", h.getPeriod)
		periods.POST("/:id/close", h.closePeriod)
	}
}

// listPeriods godoc
// @Summary List accounting periods
// @Tags periods
// @Produce json
// @Param year query int false "Only this year"
// @Success 200 {array} dto.PeriodResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /periods [get]
func (h *periodHandler) listPeriods(c *gin.Context) {
	tenantID, _, ok := actor(c)
	if !ok {
		return
	}
	var params dto.ListPeriodsParams
	if !bindQuery(c, &params) {
		return
	}
	periods, err := h.periodService.ListPeriods(c.Request.Context(), tenantID, params.Year)
	if err != nil {
		respondError(c, err, "list periods")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPeriodResponse(periods))
}

// getPeriod godoc
// @Summary Get an accounting period
// @Tags periods
// @Produce json
// @Param id path string true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} map[string]string "Period not found"
// @Security BearerAuth
// @Router /periods/{id} [get]
func (h *periodHandler) getPeriod(c *gin.Context) {
	tenantID, _, ok := actor(c)
	if !ok {
		return
	}
	period, err := h.periodService.GetPeriodByID(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// openPeriod godoc
// @Summary Open an accounting period
// @Tags periods
// @Accept json
// @Produce json
// @Param period body dto.OpenPeriodRequest true "Year and month"
// @Success 201 {object} dto.PeriodResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Period already exists"
// @Security BearerAuth
// @Router /periods [post]
func (h *periodHandler) openPeriod(c *gin.Context) {
	tenantID, userID, ok := actor(c)
	if !ok {
		return
	}
	var req dto.OpenPeriodRequest
	if !bindJSON(c, &req) {
		return
	}
	period, err := h.periodService.OpenPeriod(c.Request.Context(), tenantID, req.Year, req.Month, userID)
	if err != nil {
		respondError(c, err, "open period")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Period opened", slog.String("period", period.Label()))
	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

// closePeriod godoc
// @Summary Close an accounting period
// @Description Closing is final. Rejected while the period holds drafts unless configured otherwise.
// @Tags periods
// @Produce json
// @Param id path string true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} map[string]string "Period not found"
// @Failure 409 {object} map[string]string "Period not open or has drafts"
// @Security BearerAuth
// @Router /periods/{id}/close [post]
func (h *periodHandler) closePeriod(c *gin.Context) {
	tenantID, userID, ok := actor(c)
	if !ok {
		return
	}
	period, err := h.periodService.ClosePeriod(c.Request.Context(), tenantID, c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "close period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}
