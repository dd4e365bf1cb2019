package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/SscSPs/general_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func invoiceRequest() domain.IssueInvoiceRequest {
	return domain.IssueInvoiceRequest{
		CustomerID:    "cust-1",
		CustomerTaxID: "76.123.456-7",
		CustomerName:  "Cliente SpA",
		IssueDate:     day(2026, 2, 10),
		DocumentType:  33,
		NetAmount:     amt(100000),
		TaxAmount:     amt(19000),
	}
}

func countEntries(t *testing.T, f *ledgerFixture) int {
	t.Helper()
	entries, _, err := f.svc.Journal.ListEntries(context.Background(), f.tenantID, domain.EntryFilter{Limit: 200})
	require.NoError(t, err)
	return len(entries)
}

func TestIssueInvoice_BooksAfterProviderAccepts(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)
	f.seed(t)
	f.open(t, 2026, 2)
	provider := new(MockTaxProvider)
	svc := services.NewBusinessEventService(f.svc.AutoEntry, f.svc.Journal, provider)

	provider.On("Issue", mock.Anything, mock.MatchedBy(func(r domain.TaxDocumentRequest) bool {
		return r.TenantID == f.tenantID && r.TotalAmount.Equal(amt(119000))
	})).Return(&domain.TaxDocumentResult{
		Success: true, TrackID: "trk-55", Folio: "1001", Status: "ACCEPTED", TotalAmount: amt(119000),
	}, nil).Once()

	issued, err := svc.IssueInvoice(ctx, f.tenantID, f.actorID, invoiceRequest())

	require.NoError(t, err)
	assert.Equal(t, "trk-55", issued.TrackID)
	assert.Equal(t, "1001", issued.Folio)
	assert.Equal(t, int64(1), issued.EntryNumber)

	entry, err := f.svc.Journal.GetEntry(ctx, f.tenantID, issued.JournalEntryID)
	require.NoError(t, err)
	assert.Equal(t, domain.Draft, entry.Status)
	assert.Equal(t, domain.SourceInvoiceIssued, entry.SourceType)
	assert.Equal(t, "trk-55", entry.SourceID)
	assert.Len(t, entry.Lines, 3)
	provider.AssertExpectations(t)
}

func TestIssueInvoice_ProviderTotalDiffers(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)
	f.seed(t)
	f.open(t, 2026, 2)

	t.Run("tax line absorbs the difference", func(t *testing.T) {
		provider := new(MockTaxProvider)
		provider.On("Issue", mock.Anything, mock.Anything).Return(&domain.TaxDocumentResult{
			Success: true, TrackID: "trk-56", Folio: "1002", Status: "ACCEPTED", TotalAmount: amt(119001),
		}, nil).Once()
		svc := services.NewBusinessEventService(f.svc.AutoEntry, f.svc.Journal, provider)

		issued, err := svc.IssueInvoice(ctx, f.tenantID, f.actorID, invoiceRequest())

		require.NoError(t, err)
		assert.True(t, issued.TotalAmount.Equal(amt(119001)))
		entry, err := f.svc.Journal.GetEntry(ctx, f.tenantID, issued.JournalEntryID)
		require.NoError(t, err)
		require.Len(t, entry.Lines, 3)
		assert.True(t, entry.TotalDebit.Equal(amt(119001)))
		assert.True(t, entry.TotalCredit.Equal(amt(119001)))
		assert.True(t, entry.Lines[1].Credit.Equal(amt(100000)))
		assert.True(t, entry.Lines[2].Credit.Equal(amt(19001)))
		provider.AssertExpectations(t)
	})

	t.Run("total below net is a provider error", func(t *testing.T) {
		before := countEntries(t, f)
		provider := new(MockTaxProvider)
		provider.On("Issue", mock.Anything, mock.Anything).Return(&domain.TaxDocumentResult{
			Success: true, TrackID: "trk-57", TotalAmount: amt(90000),
		}, nil).Once()
		svc := services.NewBusinessEventService(f.svc.AutoEntry, f.svc.Journal, provider)

		_, err := svc.IssueInvoice(ctx, f.tenantID, f.actorID, invoiceRequest())

		require.ErrorIs(t, err, apperrors.ErrProvider)
		assert.Contains(t, err.Error(), "trk-57")
		assert.Equal(t, before, countEntries(t, f))
	})
}

func TestIssueInvoice_ProviderFailureCreatesNothing(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)
	f.seed(t)
	f.open(t, 2026, 2)

	tests := []struct {
		name   string
		result *domain.TaxDocumentResult
		err    error
	}{
		{"rejected", &domain.TaxDocumentResult{Success: false, Message: "RUT inválido"}, nil},
		{"transport error", nil, errors.New("connection reset")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(MockTaxProvider)
			provider.On("Issue", mock.Anything, mock.Anything).Return(tt.result, tt.err).Once()
			svc := services.NewBusinessEventService(f.svc.AutoEntry, f.svc.Journal, provider)

			_, err := svc.IssueInvoice(ctx, f.tenantID, f.actorID, invoiceRequest())

			require.ErrorIs(t, err, apperrors.ErrProvider)
			assert.Zero(t, countEntries(t, f))
		})
	}

	t.Run("no provider", func(t *testing.T) {
		svc := services.NewBusinessEventService(f.svc.AutoEntry, f.svc.Journal, nil)
		_, err := svc.IssueInvoice(ctx, f.tenantID, f.actorID, invoiceRequest())
		assert.ErrorIs(t, err, apperrors.ErrProvider)
	})

	t.Run("invalid amounts never reach the provider", func(t *testing.T) {
		provider := new(MockTaxProvider)
		svc := services.NewBusinessEventService(f.svc.AutoEntry, f.svc.Journal, provider)
		req := invoiceRequest()
		req.NetAmount = amt(0)
		_, err := svc.IssueInvoice(ctx, f.tenantID, f.actorID, req)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		provider.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	})
}

func TestRecordEvents(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)
	f.seed(t)
	f.open(t, 2026, 2)
	bank := f.accountID(t, "1.1.01.002")
	rent := f.accountID(t, "6.1.02.001")

	issued, err := f.svc.Events.RecordInvoiceIssued(ctx, f.tenantID, f.actorID, domain.InvoiceIssuedEvent{
		DocumentID: "trk-1", Folio: "1", Date: day(2026, 2, 3), NetAmount: amt(100), TaxAmount: amt(19),
	})
	require.NoError(t, err)
	assert.True(t, issued.TotalDebit.Equal(amt(119)))

	received, err := f.svc.Events.RecordInvoiceReceived(ctx, f.tenantID, f.actorID, domain.InvoiceReceivedEvent{
		DocumentID: "doc-1", Date: day(2026, 2, 4), ExpenseAccountID: rent, NetAmount: amt(200), TaxAmount: amt(38),
	})
	require.NoError(t, err)
	assert.True(t, received.TotalCredit.Equal(amt(238)))

	_, err = f.svc.Events.RecordPaymentReceived(ctx, f.tenantID, f.actorID, domain.PaymentReceivedEvent{
		PaymentID: "p-1", Date: day(2026, 2, 5), BankAccountID: bank, Amount: amt(119),
	})
	require.NoError(t, err)

	made, err := f.svc.Events.RecordPaymentMade(ctx, f.tenantID, f.actorID, domain.PaymentMadeEvent{
		PaymentID: "p-2", Date: day(2026, 2, 6), BankAccountID: bank, Amount: amt(238),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), made.Number)

	// the builder's output is re-validated: an aggregation account as bank is rejected
	group := f.accountID(t, "1.1.01")
	_, err = f.svc.Events.RecordPaymentMade(ctx, f.tenantID, f.actorID, domain.PaymentMadeEvent{
		PaymentID: "p-3", Date: day(2026, 2, 6), BankAccountID: group, Amount: amt(1),
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountNotPostable)

	// a mismatched total is caught by the validator
	_, err = f.svc.Events.RecordInvoiceIssued(ctx, f.tenantID, f.actorID, domain.InvoiceIssuedEvent{
		DocumentID: "trk-2", Date: day(2026, 2, 3), NetAmount: amt(100), TaxAmount: amt(19), TotalAmount: amt(120),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, 4, countEntries(t, f))
}
