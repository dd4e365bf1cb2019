package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/core/services"
	"github.com/SscSPs/general_ledger/internal/platform/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerFixture struct {
	store    *memStore
	svc      *portssvc.ServiceContainer
	tenantID string
	actorID  string
	roles    domain.AccountRoles
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	store := newMemStore()
	cfg := &config.Config{
		RejectCloseWithDrafts: true,
		AccountRoles:          domain.AccountRoleTable{Default: domain.DefaultAccountRoles()},
	}
	return &ledgerFixture{
		store:    store,
		svc:      services.NewServiceContainer(cfg, store.repositories(), nil),
		tenantID: uuid.NewString(),
		actorID:  uuid.NewString(),
		roles:    domain.DefaultAccountRoles(),
	}
}

func (f *ledgerFixture) seed(t *testing.T) {
	t.Helper()
	created, err := f.svc.AccountPlan.SeedAccountPlan(context.Background(), f.tenantID, f.actorID)
	require.NoError(t, err)
	require.Equal(t, services.DefaultPlanSize(), created)
}

func (f *ledgerFixture) open(t *testing.T, year, month int) *domain.AccountingPeriod {
	t.Helper()
	p, err := f.svc.Period.OpenPeriod(context.Background(), f.tenantID, year, month, f.actorID)
	require.NoError(t, err)
	return p
}

func (f *ledgerFixture) accountID(t *testing.T, code string) string {
	t.Helper()
	accounts, err := f.svc.AccountPlan.ResolveAccountCodes(context.Background(), f.tenantID, []string{code})
	require.NoError(t, err)
	return accounts[code].AccountID
}

func day(year, month, d int) time.Time {
	return time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
}

func amt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestLedgerScenario_InvoicePostCloseReverse(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)
	f.seed(t)
	feb := f.open(t, 2026, 2)

	receivable := f.accountID(t, f.roles.AccountsReceivable)
	revenue := f.accountID(t, f.roles.ServiceRevenue)
	outputVAT := f.accountID(t, f.roles.OutputVAT)

	entry, err := f.svc.Journal.CreateManualEntry(ctx, f.tenantID, f.actorID, domain.JournalEntryInput{
		Date:        day(2026, 2, 15),
		Description: "Factura 1001",
		Lines: []domain.JournalLineInput{
			{AccountID: receivable, Debit: amt(119000), Credit: decimal.Zero},
			{AccountID: revenue, Debit: decimal.Zero, Credit: amt(100000)},
			{AccountID: outputVAT, Debit: decimal.Zero, Credit: amt(19000)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Draft, entry.Status)
	assert.Equal(t, int64(1), entry.Number)
	assert.Equal(t, feb.PeriodID, entry.PeriodID)
	assert.True(t, entry.TotalDebit.Equal(amt(119000)))
	assert.True(t, entry.TotalCredit.Equal(amt(119000)))

	// drafts are invisible to the ledger
	ledger, err := f.svc.Ledger.GetLedgerEntries(ctx, f.tenantID, receivable, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, ledger.Entries)

	posted, err := f.svc.Journal.PostEntry(ctx, f.tenantID, entry.EntryID, f.actorID)
	require.NoError(t, err)
	assert.Equal(t, domain.Posted, posted.Status)

	_, err = f.svc.Journal.PostEntry(ctx, f.tenantID, entry.EntryID, f.actorID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	_, err = f.svc.Period.ClosePeriod(ctx, f.tenantID, feb.PeriodID, f.actorID)
	require.NoError(t, err)

	_, err = f.svc.Journal.CreateManualEntry(ctx, f.tenantID, f.actorID, domain.JournalEntryInput{
		Date:        day(2026, 2, 20),
		Description: "Tardío",
		Lines: []domain.JournalLineInput{
			{AccountID: receivable, Debit: amt(10), Credit: decimal.Zero},
			{AccountID: revenue, Debit: decimal.Zero, Credit: amt(10)},
		},
	})
	assert.ErrorIs(t, err, apperrors.ErrPeriodClosed)

	// no March period yet
	_, err = f.svc.Journal.ReverseEntry(ctx, f.tenantID, entry.EntryID, f.actorID, day(2026, 3, 1))
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	unchanged, err := f.svc.Journal.GetEntry(ctx, f.tenantID, entry.EntryID)
	require.NoError(t, err)
	assert.Equal(t, domain.Posted, unchanged.Status)
	assert.Nil(t, unchanged.ReversedByID)

	f.open(t, 2026, 3)
	reversal, err := f.svc.Journal.ReverseEntry(ctx, f.tenantID, entry.EntryID, f.actorID, day(2026, 3, 1))
	require.NoError(t, err)
	assert.Equal(t, domain.Posted, reversal.Status)
	assert.Equal(t, "Reverso de asiento #1", reversal.Description)
	assert.Equal(t, "REV-1", reversal.Reference)
	require.Len(t, reversal.Lines, 3)
	assert.True(t, reversal.Lines[0].Credit.Equal(amt(119000)))
	assert.True(t, reversal.Lines[1].Debit.Equal(amt(100000)))
	assert.True(t, reversal.Lines[2].Debit.Equal(amt(19000)))

	original, err := f.svc.Journal.GetEntry(ctx, f.tenantID, entry.EntryID)
	require.NoError(t, err)
	assert.Equal(t, domain.Reversed, original.Status)
	require.NotNil(t, original.ReversedByID)
	assert.Equal(t, reversal.EntryID, *original.ReversedByID)
	assert.True(t, original.Lines[0].Debit.Equal(amt(119000)))

	stored, err := f.svc.Journal.GetEntry(ctx, f.tenantID, reversal.EntryID)
	require.NoError(t, err)
	require.NotNil(t, stored.ReversalOfID)
	assert.Equal(t, entry.EntryID, *stored.ReversalOfID)

	_, err = f.svc.Journal.ReverseEntry(ctx, f.tenantID, entry.EntryID, f.actorID, day(2026, 3, 2))
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	// the original's lines stay in the ledger, offset by the reversal
	ledger, err = f.svc.Ledger.GetLedgerEntries(ctx, f.tenantID, receivable, nil, nil)
	require.NoError(t, err)
	require.Len(t, ledger.Entries, 2)
	assert.True(t, ledger.Entries[0].Balance.Equal(amt(119000)))
	assert.True(t, ledger.Entries[1].Balance.IsZero())
	assert.True(t, ledger.ClosingBalance.IsZero())

	from := day(2026, 3, 1)
	ledger, err = f.svc.Ledger.GetLedgerEntries(ctx, f.tenantID, receivable, &from, nil)
	require.NoError(t, err)
	require.Len(t, ledger.Entries, 1)
	assert.True(t, ledger.OpeningBalance.Equal(amt(119000)))
	assert.True(t, ledger.ClosingBalance.IsZero())

	// revenue is CREDIT natured, so a credit raises its balance
	ledger, err = f.svc.Ledger.GetLedgerEntries(ctx, f.tenantID, revenue, nil, &feb.EndDate)
	require.NoError(t, err)
	require.Len(t, ledger.Entries, 1)
	assert.True(t, ledger.ClosingBalance.Equal(amt(100000)))

	tb, err := f.svc.Reporting.TrialBalance(ctx, f.tenantID, day(2026, 2, 28))
	require.NoError(t, err)
	require.Len(t, tb.Rows, 3)
	assert.True(t, tb.TotalDebit.Equal(tb.TotalCredit))
	assert.True(t, tb.TotalDebit.Equal(amt(119000)))
}

func TestLedgerScenario_ConcurrentNumbering(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)
	f.seed(t)
	f.open(t, 2026, 4)
	cash := f.accountID(t, "1.1.01.001")
	revenue := f.accountID(t, f.roles.ServiceRevenue)

	const writers = 25
	numbers := make(chan int64, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := f.svc.Journal.CreateManualEntry(ctx, f.tenantID, f.actorID, domain.JournalEntryInput{
				Date:        day(2026, 4, 10),
				Description: "Venta contado",
				Lines: []domain.JournalLineInput{
					{AccountID: cash, Debit: amt(5), Credit: decimal.Zero},
					{AccountID: revenue, Debit: decimal.Zero, Credit: amt(5)},
				},
			})
			if assert.NoError(t, err) {
				numbers <- e.Number
			}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := map[int64]bool{}
	for n := range numbers {
		assert.False(t, seen[n], "number %d assigned twice", n)
		seen[n] = true
	}
	assert.Len(t, seen, writers)
	for n := int64(1); n <= writers; n++ {
		assert.True(t, seen[n], "number %d missing", n)
	}

	// a rejected entry does not consume a number
	_, err := f.svc.Journal.CreateManualEntry(ctx, f.tenantID, f.actorID, domain.JournalEntryInput{
		Date: day(2026, 4, 11),
		Lines: []domain.JournalLineInput{
			{AccountID: cash, Debit: amt(5), Credit: decimal.Zero},
			{AccountID: uuid.NewString(), Debit: decimal.Zero, Credit: amt(5)},
		},
	})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	next, err := f.svc.Journal.CreateManualEntry(ctx, f.tenantID, f.actorID, domain.JournalEntryInput{
		Date: day(2026, 4, 11),
		Lines: []domain.JournalLineInput{
			{AccountID: cash, Debit: amt(5), Credit: decimal.Zero},
			{AccountID: revenue, Debit: decimal.Zero, Credit: amt(5)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(writers+1), next.Number)
}

func TestLedgerScenario_TenantIsolation(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)
	f.seed(t)
	f.open(t, 2026, 5)
	cash := f.accountID(t, "1.1.01.001")
	revenue := f.accountID(t, f.roles.ServiceRevenue)

	other := uuid.NewString()
	_, err := f.svc.Period.OpenPeriod(ctx, other, 2026, 5, f.actorID)
	require.NoError(t, err)

	_, err = f.svc.Journal.CreateManualEntry(ctx, other, f.actorID, domain.JournalEntryInput{
		Date: day(2026, 5, 3),
		Lines: []domain.JournalLineInput{
			{AccountID: cash, Debit: amt(5), Credit: decimal.Zero},
			{AccountID: revenue, Debit: decimal.Zero, Credit: amt(5)},
		},
	})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "2 account(s) not found")
}

func TestLedgerScenario_CloseWithDrafts(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)
	f.seed(t)
	june := f.open(t, 2026, 6)
	cash := f.accountID(t, "1.1.01.001")
	revenue := f.accountID(t, f.roles.ServiceRevenue)

	draft, err := f.svc.Journal.CreateManualEntry(ctx, f.tenantID, f.actorID, domain.JournalEntryInput{
		Date: day(2026, 6, 1),
		Lines: []domain.JournalLineInput{
			{AccountID: cash, Debit: amt(5), Credit: decimal.Zero},
			{AccountID: revenue, Debit: decimal.Zero, Credit: amt(5)},
		},
	})
	require.NoError(t, err)

	_, err = f.svc.Period.ClosePeriod(ctx, f.tenantID, june.PeriodID, f.actorID)
	require.ErrorIs(t, err, apperrors.ErrInvalidState)
	assert.Contains(t, err.Error(), "draft")

	require.NoError(t, f.svc.Journal.DiscardEntry(ctx, f.tenantID, draft.EntryID, f.actorID))
	_, err = f.svc.Journal.GetEntry(ctx, f.tenantID, draft.EntryID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	closed, err := f.svc.Period.ClosePeriod(ctx, f.tenantID, june.PeriodID, f.actorID)
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodClosed, closed.Status)

	_, err = f.svc.Period.ClosePeriod(ctx, f.tenantID, june.PeriodID, f.actorID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestLedgerScenario_ListEntriesPaging(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)
	f.seed(t)
	f.open(t, 2026, 7)
	cash := f.accountID(t, "1.1.01.001")
	revenue := f.accountID(t, f.roles.ServiceRevenue)

	for d := 5; d >= 1; d-- {
		_, err := f.svc.Journal.CreateManualEntry(ctx, f.tenantID, f.actorID, domain.JournalEntryInput{
			Date: day(2026, 7, d),
			Lines: []domain.JournalLineInput{
				{AccountID: cash, Debit: amt(int64(d)), Credit: decimal.Zero},
				{AccountID: revenue, Debit: decimal.Zero, Credit: amt(int64(d))},
			},
		})
		require.NoError(t, err)
	}

	page, next, err := f.svc.Journal.ListEntries(ctx, f.tenantID, domain.EntryFilter{Limit: 3})
	require.NoError(t, err)
	require.Len(t, page, 3)
	require.NotNil(t, next)
	assert.Equal(t, day(2026, 7, 1), page[0].EntryDate)
	assert.Equal(t, day(2026, 7, 3), page[2].EntryDate)

	rest, next, err := f.svc.Journal.ListEntries(ctx, f.tenantID, domain.EntryFilter{Limit: 3, NextToken: next})
	require.NoError(t, err)
	assert.Len(t, rest, 2)
	assert.Nil(t, next)

	posted, _, err := f.svc.Journal.ListEntries(ctx, f.tenantID, domain.EntryFilter{Status: domain.Posted})
	require.NoError(t, err)
	assert.Empty(t, posted)
}
