package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/SscSPs/general_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles the journal entry lifecycle.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// RegisterJournalRoutes registers routes for journal entries.
func RegisterJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := &journalHandler{journalService: journalService}

	entries := rg.Group("/journal-entries")
	{
		entries.GET("", h.listEntries)
		entries.POST("", h.createEntry)
		entries.GET("/:id", h.getEntry)
		entries.POST("/:id/post", h.postEntry)
		entries.POST("/:id/reverse", h.reverseEntry)
		entries.DELETE("/:id", h.discardEntry)
	}
}

// createEntry godoc
// @Summary Create a manual journal entry
// @Description Validates the lines and stores the entry as DRAFT with the next number
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateJournalEntryRequest true "Entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid or unbalanced entry"
// @Failure 404 {object} map[string]string "Unknown account or no period for the date"
// @Failure 409 {object} map[string]string "Period closed"
// @Failure 422 {object} map[string]string "Account does not accept entries"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	tenantID, userID, ok := actor(c)
	if !ok {
		return
	}
	var req dto.CreateJournalEntryRequest
	if !bindJSON(c, &req) {
		return
	}
	input, err := req.ToInput()
	if err != nil {
		respondError(c, err, "create journal entry")
		return
	}

	entry, err := h.journalService.CreateManualEntry(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		respondError(c, err, "create journal entry")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal entry created",
		slog.String("entry_id", entry.EntryID), slog.Int64("number", entry.Number))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry with its lines
// @Tags journal-entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /journal-entries/{id} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	tenantID, _, ok := actor(c)
	if !ok {
		return
	}
	entry, err := h.journalService.GetEntry(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Entry headers ordered by date and number, paginated with nextToken
// @Tags journal-entries
// @Produce json
// @Param dateFrom query string false "YYYY-MM-DD"
// @Param dateTo query string false "YYYY-MM-DD"
// @Param status query string false "DRAFT, POSTED or REVERSED"
// @Param sourceType query string false "MANUAL, INVOICE_ISSUED, INVOICE_RECEIVED or PAYMENT"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	tenantID, _, ok := actor(c)
	if !ok {
		return
	}
	var params dto.ListJournalEntriesParams
	if !bindQuery(c, &params) {
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondError(c, err, "list journal entries")
		return
	}

	entries, next, err := h.journalService.ListEntries(c.Request.Context(), tenantID, filter)
	if err != nil {
		respondError(c, err, "list journal entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListJournalEntriesResponse(entries, next))
}

// postEntry godoc
// @Summary Post a draft entry
// @Tags journal-entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is not a draft or its period is closed"
// @Security BearerAuth
// @Router /journal-entries/{id}/post [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	tenantID, userID, ok := actor(c)
	if !ok {
		return
	}
	entry, err := h.journalService.PostEntry(c.Request.Context(), tenantID, c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "post journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// reverseEntry godoc
// @Summary Reverse a posted entry
// @Description Books a posted entry with debits and credits swapped and marks the original REVERSED
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param reversal body dto.ReverseJournalEntryRequest true "Reversal date"
// @Success 201 {object} dto.JournalEntryResponse "The reversal entry"
// @Failure 404 {object} map[string]string "Entry not found or no period for the date"
// @Failure 409 {object} map[string]string "Entry is not posted or the period is closed"
// @Security BearerAuth
// @Router /journal-entries/{id}/reverse [post]
func (h *journalHandler) reverseEntry(c *gin.Context) {
	tenantID, userID, ok := actor(c)
	if !ok {
		return
	}
	var req dto.ReverseJournalEntryRequest
	if !bindJSON(c, &req) {
		return
	}
	reverseDate, err := dto.ParseDate(req.ReverseDate)
	if err != nil {
		respondError(c, fmt.Errorf("%w: invalid reverseDate", apperrors.ErrValidation), "reverse journal entry")
		return
	}

	reversal, err := h.journalService.ReverseEntry(c.Request.Context(), tenantID, c.Param("id"), userID, reverseDate)
	if err != nil {
		respondError(c, err, "reverse journal entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(reversal))
}

// discardEntry godoc
// @Summary Discard a draft entry
// @Tags journal-entries
// @Param id path string true "Entry ID"
// @Success 204 "Discarded"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is not a draft"
// @Security BearerAuth
// @Router /journal-entries/{id} [delete]
func (h *journalHandler) discardEntry(c *gin.Context) {
	tenantID, userID, ok := actor(c)
	if !ok {
		return
	}
	if err := h.journalService.DiscardEntry(c.Request.Context(), tenantID, c.Param("id"), userID); err != nil {
		respondError(c, err, "discard journal entry")
		return
	}
	c.Status(http.StatusNoContent)
}
