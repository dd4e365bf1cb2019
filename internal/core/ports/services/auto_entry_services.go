package services

import (
	"context"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// AutoEntryBuilderSvc turns business events into unvalidated journal entry inputs.
type AutoEntryBuilderSvc interface {
	BuildInvoiceIssued(ctx context.Context, tenantID string, event domain.InvoiceIssuedEvent) (domain.JournalEntryInput, error)
	BuildInvoiceReceived(ctx context.Context, tenantID string, event domain.InvoiceReceivedEvent) (domain.JournalEntryInput, error)
	BuildPaymentReceived(ctx context.Context, tenantID string, event domain.PaymentReceivedEvent) (domain.JournalEntryInput, error)
	BuildPaymentMade(ctx context.Context, tenantID string, event domain.PaymentMadeEvent) (domain.JournalEntryInput, error)
}
