package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountPlanService ---
type MockAccountPlanService struct {
	mock.Mock
}

func (m *MockAccountPlanService) GetAccountPlan(ctx context.Context, tenantID string) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountPlanService) GetAccountTree(ctx context.Context, tenantID string) ([]*domain.AccountNode, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AccountNode), args.Error(1)
}
func (m *MockAccountPlanService) GetAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountPlanService) ResolveAccountCodes(ctx context.Context, tenantID string, codes []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tenantID, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}
func (m *MockAccountPlanService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, actorID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountPlanService) UpdateAccount(ctx context.Context, tenantID, accountID string, req dto.UpdateAccountRequest, actorID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, accountID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountPlanService) SeedAccountPlan(ctx context.Context, tenantID, actorID string) (int, error) {
	args := m.Called(ctx, tenantID, actorID)
	return args.Int(0), args.Error(1)
}

var _ portssvc.AccountPlanSvcFacade = (*MockAccountPlanService)(nil)

// --- Mock PeriodService ---
type MockPeriodService struct {
	mock.Mock
}

func (m *MockPeriodService) ResolvePeriod(ctx context.Context, tenantID string, date time.Time) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, tenantID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}
func (m *MockPeriodService) GetPeriodByID(ctx context.Context, tenantID, periodID string) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, tenantID, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}
func (m *MockPeriodService) ListPeriods(ctx context.Context, tenantID string, year *int) ([]domain.AccountingPeriod, error) {
	args := m.Called(ctx, tenantID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingPeriod), args.Error(1)
}
func (m *MockPeriodService) OpenPeriod(ctx context.Context, tenantID string, year, month int, actorID string) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, tenantID, year, month, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}
func (m *MockPeriodService) ClosePeriod(ctx context.Context, tenantID, periodID, actorID string) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, tenantID, periodID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

var _ portssvc.PeriodSvcFacade = (*MockPeriodService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) GetEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) ListEntries(ctx context.Context, tenantID string, filter domain.EntryFilter) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, tenantID, filter)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), next, args.Error(2)
}
func (m *MockJournalService) CreateManualEntry(ctx context.Context, tenantID, actorID string, input domain.JournalEntryInput) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, actorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) PostEntry(ctx context.Context, tenantID, entryID, actorID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, entryID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) ReverseEntry(ctx context.Context, tenantID, entryID, actorID string, reverseDate time.Time) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, entryID, actorID, reverseDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) DiscardEntry(ctx context.Context, tenantID, entryID, actorID string) error {
	args := m.Called(ctx, tenantID, entryID, actorID)
	return args.Error(0)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetLedgerEntries(ctx context.Context, tenantID, accountID string, dateFrom, dateTo *time.Time) (*domain.AccountLedger, error) {
	args := m.Called(ctx, tenantID, accountID, dateFrom, dateTo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountLedger), args.Error(1)
}

var _ portssvc.LedgerReaderSvc = (*MockLedgerService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context, tenantID string, asOf time.Time) (*domain.TrialBalance, error) {
	args := m.Called(ctx, tenantID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock BusinessEventService ---
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) entry(args mock.Arguments) (*domain.JournalEntry, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockEventService) RecordInvoiceIssued(ctx context.Context, tenantID, actorID string, event domain.InvoiceIssuedEvent) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, tenantID, actorID, event))
}
func (m *MockEventService) RecordInvoiceReceived(ctx context.Context, tenantID, actorID string, event domain.InvoiceReceivedEvent) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, tenantID, actorID, event))
}
func (m *MockEventService) RecordPaymentReceived(ctx context.Context, tenantID, actorID string, event domain.PaymentReceivedEvent) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, tenantID, actorID, event))
}
func (m *MockEventService) RecordPaymentMade(ctx context.Context, tenantID, actorID string, event domain.PaymentMadeEvent) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, tenantID, actorID, event))
}
func (m *MockEventService) IssueInvoice(ctx context.Context, tenantID, actorID string, req domain.IssueInvoiceRequest) (*domain.IssuedInvoice, error) {
	args := m.Called(ctx, tenantID, actorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IssuedInvoice), args.Error(1)
}

var _ portssvc.BusinessEventSvc = (*MockEventService)(nil)
