package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/SscSPs/general_ledger/internal/core/ports/providers"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
)

// eventService books business events through the auto-entry builder and the journal.
type eventService struct {
	BaseService
	builder  portssvc.AutoEntryBuilderSvc
	journal  portssvc.JournalWriterSvc
	provider providers.TaxDocumentProvider
}

// NewBusinessEventService creates the event booking service. provider may be nil, in which
// case IssueInvoice fails with a provider error.
func NewBusinessEventService(builder portssvc.AutoEntryBuilderSvc, journal portssvc.JournalWriterSvc, provider providers.TaxDocumentProvider) portssvc.BusinessEventSvc {
	return &eventService{builder: builder, journal: journal, provider: provider}
}

var _ portssvc.BusinessEventSvc = (*eventService)(nil)

func (s *eventService) book(ctx context.Context, tenantID, actorID string, input domain.JournalEntryInput, buildErr error) (*domain.JournalEntry, error) {
	if buildErr != nil {
		return nil, buildErr
	}
	return s.journal.CreateManualEntry(ctx, tenantID, actorID, input)
}

func (s *eventService) RecordInvoiceIssued(ctx context.Context, tenantID, actorID string, event domain.InvoiceIssuedEvent) (*domain.JournalEntry, error) {
	input, err := s.builder.BuildInvoiceIssued(ctx, tenantID, event)
	return s.book(ctx, tenantID, actorID, input, err)
}

func (s *eventService) RecordInvoiceReceived(ctx context.Context, tenantID, actorID string, event domain.InvoiceReceivedEvent) (*domain.JournalEntry, error) {
	input, err := s.builder.BuildInvoiceReceived(ctx, tenantID, event)
	return s.book(ctx, tenantID, actorID, input, err)
}

func (s *eventService) RecordPaymentReceived(ctx context.Context, tenantID, actorID string, event domain.PaymentReceivedEvent) (*domain.JournalEntry, error) {
	input, err := s.builder.BuildPaymentReceived(ctx, tenantID, event)
	return s.book(ctx, tenantID, actorID, input, err)
}

func (s *eventService) RecordPaymentMade(ctx context.Context, tenantID, actorID string, event domain.PaymentMadeEvent) (*domain.JournalEntry, error) {
	input, err := s.builder.BuildPaymentMade(ctx, tenantID, event)
	return s.book(ctx, tenantID, actorID, input, err)
}

// IssueInvoice asks the provider for the tax document first; the journal entry is created
// only once the provider has accepted it.
func (s *eventService) IssueInvoice(ctx context.Context, tenantID, actorID string, req domain.IssueInvoiceRequest) (*domain.IssuedInvoice, error) {
	if !req.NetAmount.IsPositive() || req.TaxAmount.IsNegative() {
		return nil, fmt.Errorf("%w: invoice needs a positive net amount and a non-negative tax amount", apperrors.ErrValidation)
	}
	if s.provider == nil {
		return nil, fmt.Errorf("%w: no tax document provider configured", apperrors.ErrProvider)
	}

	total := req.NetAmount.Add(req.TaxAmount)
	result, err := s.provider.Issue(ctx, domain.TaxDocumentRequest{
		TenantID:      tenantID,
		DocumentType:  req.DocumentType,
		IssueDate:     req.IssueDate,
		CustomerTaxID: req.CustomerTaxID,
		CustomerName:  req.CustomerName,
		NetAmount:     req.NetAmount,
		TaxAmount:     req.TaxAmount,
		TotalAmount:   total,
		Items:         req.Items,
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrProvider) {
			err = fmt.Errorf("%w: %v", apperrors.ErrProvider, err)
		}
		s.LogWarn(ctx, err, "Tax document provider failed", slog.String("tenant_id", tenantID))
		return nil, err
	}
	if !result.Success {
		err := fmt.Errorf("%w: document rejected: %s", apperrors.ErrProvider, result.Message)
		s.LogWarn(ctx, err, "Tax document rejected", slog.String("tenant_id", tenantID))
		return nil, err
	}

	taxAmount := req.TaxAmount
	if result.TotalAmount.IsPositive() && !result.TotalAmount.Equal(total) {
		// the issued document is authoritative; the tax line absorbs the difference
		adjustedTax := result.TotalAmount.Sub(req.NetAmount)
		if adjustedTax.IsNegative() {
			err := fmt.Errorf("%w: provider total %s is below the net amount %s (track %s)",
				apperrors.ErrProvider, result.TotalAmount.String(), req.NetAmount.String(), result.TrackID)
			s.LogError(ctx, err, "Invoice issued but not booked",
				slog.String("track_id", result.TrackID),
				slog.String("folio", result.Folio))
			return nil, err
		}
		s.LogWarn(ctx, errors.New("provider total differs from request"), "Using provider total",
			slog.String("requested", total.String()),
			slog.String("provider", result.TotalAmount.String()),
			slog.String("tax", adjustedTax.String()))
		total = result.TotalAmount
		taxAmount = adjustedTax
	}

	entry, err := s.RecordInvoiceIssued(ctx, tenantID, actorID, domain.InvoiceIssuedEvent{
		DocumentID:  result.TrackID,
		Folio:       result.Folio,
		Date:        req.IssueDate,
		CustomerID:  req.CustomerID,
		Description: req.Description,
		NetAmount:   req.NetAmount,
		TaxAmount:   taxAmount,
		TotalAmount: total,
	})
	if err != nil {
		s.LogError(ctx, err, "Invoice issued but not booked",
			slog.String("track_id", result.TrackID),
			slog.String("folio", result.Folio))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice issued and booked",
		slog.String("track_id", result.TrackID),
		slog.String("entry_id", entry.EntryID))
	return &domain.IssuedInvoice{
		TrackID:        result.TrackID,
		Folio:          result.Folio,
		ProviderStatus: result.Status,
		TotalAmount:    total,
		JournalEntryID: entry.EntryID,
		EntryNumber:    entry.Number,
	}, nil
}

