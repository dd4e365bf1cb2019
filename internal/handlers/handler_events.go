package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/SscSPs/general_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// eventHandler books upstream business events and issues invoices.
type eventHandler struct {
	eventService portssvc.BusinessEventSvc
}

// RegisterEventRoutes registers the event recording and invoicing routes.
func RegisterEventRoutes(rg *gin.RouterGroup, eventService portssvc.BusinessEventSvc) {
	h := &eventHandler{eventService: eventService}

	events := rg.Group("/events")
	{
		events.POST("/invoice-issued", h.invoiceIssued)
		events.POST("/invoice-received", h.invoiceReceived)
		events.POST("/payment-received", h.paymentReceived)
		events.POST("/payment-made", h.paymentMade)
	}
	rg.POST("/invoices", h.issueInvoice)
}

func recorded(c *gin.Context, entry *domain.JournalEntry) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Business event booked",
		slog.String("entry_id", entry.EntryID), slog.String("source_type", string(entry.SourceType)))
	c.JSON(http.StatusCreated, dto.EventRecordedResponse{
		JournalEntryID: entry.EntryID,
		Number:         entry.Number,
		Status:         string(entry.Status),
	})
}

// invoiceIssued godoc
// @Summary Book an issued sales invoice
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.InvoiceIssuedRequest true "Invoice"
// @Success 201 {object} dto.EventRecordedResponse
// @Failure 400 {object} map[string]string "Invalid or unbalanced amounts"
// @Failure 404 {object} map[string]string "Role account missing from the plan"
// @Security BearerAuth
// @Router /events/invoice-issued [post]
func (h *eventHandler) invoiceIssued(c *gin.Context) {
	tenantID, userID, ok := actor(c)
	if !ok {
		return
	}
	var req dto.InvoiceIssuedRequest
	if !bindJSON(c, &req) {
		return
	}
	event, err := req.ToEvent()
	if err != nil {
		respondError(c, err, "record invoice")
		return
	}
	entry, err := h.eventService.RecordInvoiceIssued(c.Request.Context(), tenantID, userID, event)
	if err != nil {
		respondError(c, err, "record invoice")
		return
	}
	recorded(c, entry)
}

// invoiceReceived godoc
// @Summary Book a received supplier invoice
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.InvoiceReceivedRequest true "Invoice"
// @Success 201 {object} dto.EventRecordedResponse
// @Failure 400 {object} map[string]string "Invalid or unbalanced amounts"
// @Failure 422 {object} map[string]string "Expense account does not accept entries"
// @Security BearerAuth
// @Router /events/invoice-received [post]
func (h *eventHandler) invoiceReceived(c *gin.Context) {
	tenantID, userID, ok := actor(c)
	if !ok {
		return
	}
	var req dto.InvoiceReceivedRequest
	if !bindJSON(c, &req) {
		return
	}
	event, err := req.ToEvent()
	if err != nil {
		respondError(c, err, "record supplier invoice")
		return
	}
	entry, err := h.eventService.RecordInvoiceReceived(c.Request.Context(), tenantID, userID, event)
	if err != nil {
		respondError(c, err, "record supplier invoice")
		return
	}
	recorded(c, entry)
}

// paymentReceived godoc
// @Summary Book a customer payment
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.PaymentRequest true "Payment"
// @Success 201 {object} dto.EventRecordedResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Security BearerAuth
// @Router /events/payment-received [post]
func (h *eventHandler) paymentReceived(c *gin.Context) {
	tenantID, userID, ok := actor(c)
	if !ok {
		return
	}
	var req dto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	event, err := req.ToReceivedEvent()
	if err != nil {
		respondError(c, err, "record payment")
		return
	}
	entry, err := h.eventService.RecordPaymentReceived(c.Request.Context(), tenantID, userID, event)
	if err != nil {
		respondError(c, err, "record payment")
		return
	}
	recorded(c, entry)
}

// paymentMade godoc
// @Summary Book a supplier payment
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.PaymentRequest true "Payment"
// @Success 201 {object} dto.EventRecordedResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Security BearerAuth
// @Router /events/payment-made [post]
func (h *eventHandler) paymentMade(c *gin.Context) {
	tenantID, userID, ok := actor(c)
	if !ok {
		return
	}
	var req dto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	event, err := req.ToMadeEvent()
	if err != nil {
		respondError(c, err, "record payment")
		return
	}
	entry, err := h.eventService.RecordPaymentMade(c.Request.Context(), tenantID, userID, event)
	if err != nil {
		respondError(c, err, "record payment")
		return
	}
	recorded(c, entry)
}

// issueInvoice godoc
// @Summary Issue a sales invoice
// @Description Has the tax document provider issue the invoice, then books it as a draft entry
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.IssueInvoiceRequest true "Invoice"
// @Success 201 {object} domain.IssuedInvoice
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]string "Provider rejected or failed"
// @Security BearerAuth
// @Router /invoices [post]
func (h *eventHandler) issueInvoice(c *gin.Context) {
	tenantID, userID, ok := actor(c)
	if !ok {
		return
	}
	var req dto.IssueInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}
	issueReq, err := req.ToDomain()
	if err != nil {
		respondError(c, err, "issue invoice")
		return
	}
	issued, err := h.eventService.IssueInvoice(c.Request.Context(), tenantID, userID, issueReq)
	if err != nil {
		respondError(c, err, "issue invoice")
		return
	}
	c.JSON(http.StatusCreated, issued)
}
