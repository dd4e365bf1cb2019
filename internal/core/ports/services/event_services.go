package services

import (
	"context"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// BusinessEventSvc books upstream business events as DRAFT journal entries.
type BusinessEventSvc interface {
	RecordInvoiceIssued(ctx context.Context, tenantID, actorID string, event domain.InvoiceIssuedEvent) (*domain.JournalEntry, error)
	RecordInvoiceReceived(ctx context.Context, tenantID, actorID string, event domain.InvoiceReceivedEvent) (*domain.JournalEntry, error)
	RecordPaymentReceived(ctx context.Context, tenantID, actorID string, event domain.PaymentReceivedEvent) (*domain.JournalEntry, error)
	RecordPaymentMade(ctx context.Context, tenantID, actorID string, event domain.PaymentMadeEvent) (*domain.JournalEntry, error)

	// IssueInvoice has the tax document provider issue the invoice and then books it.
	// Nothing is booked when the provider fails.
	IssueInvoice(ctx context.Context, tenantID, actorID string, req domain.IssueInvoiceRequest) (*domain.IssuedInvoice, error)
}
