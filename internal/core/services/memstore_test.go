package services_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/general_ledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory implementation of every repository port. Transactions are
// serialized by txMu and roll back by restoring a snapshot taken when they began.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	accounts  map[string]domain.Account
	periods   map[string]domain.AccountingPeriod
	entries   map[string]domain.JournalEntry
	sequences map[string]int64
}

type memTxKey struct{}

var (
	_ portsrepo.AccountRepositoryFacade = (*memStore)(nil)
	_ portsrepo.PeriodRepositoryFacade  = (*memStore)(nil)
	_ portsrepo.JournalRepositoryFacade = (*memStore)(nil)
	_ portsrepo.LedgerRepository        = (*memStore)(nil)
	_ portsrepo.ReportingRepository     = (*memStore)(nil)
	_ portsrepo.TransactionManager      = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		accounts:  map[string]domain.Account{},
		periods:   map[string]domain.AccountingPeriod{},
		entries:   map[string]domain.JournalEntry{},
		sequences: map[string]int64{},
	}
}

func (s *memStore) repositories() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   s,
		PeriodRepo:    s,
		JournalRepo:   s,
		LedgerRepo:    s,
		ReportingRepo: s,
		TxManager:     s,
	}
}

type memSnapshot struct {
	accounts  map[string]domain.Account
	periods   map[string]domain.AccountingPeriod
	entries   map[string]domain.JournalEntry
	sequences map[string]int64
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memStore) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return fn(ctx)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snap := memSnapshot{cloneMap(s.accounts), cloneMap(s.periods), cloneMap(s.entries), cloneMap(s.sequences)}
	s.mu.Unlock()

	if err := fn(context.WithValue(ctx, memTxKey{}, true)); err != nil {
		s.mu.Lock()
		s.accounts, s.periods, s.entries, s.sequences = snap.accounts, snap.periods, snap.entries, snap.sequences
		s.mu.Unlock()
		return err
	}
	return nil
}

// --- accounts ---

func (s *memStore) FindAccountByID(_ context.Context, tenantID, accountID string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[accountID]
	if !ok || acc.TenantID != tenantID {
		return nil, apperrors.NewNotFoundError("account " + accountID)
	}
	return &acc, nil
}

func (s *memStore) FindAccountByCode(_ context.Context, tenantID, code string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.TenantID == tenantID && acc.Code == code {
			return &acc, nil
		}
	}
	return nil, apperrors.NewNotFoundError("account code " + code)
}

func (s *memStore) FindAccountsByIDs(_ context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]domain.Account)
	for _, id := range accountIDs {
		if acc, ok := s.accounts[id]; ok && acc.TenantID == tenantID {
			out[id] = acc
		}
	}
	return out, nil
}

func (s *memStore) FindAccountsByCodes(_ context.Context, tenantID string, codes []string) (map[string]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := make(map[string]bool, len(codes))
	for _, c := range codes {
		wanted[c] = true
	}
	out := make(map[string]domain.Account)
	for _, acc := range s.accounts {
		if acc.TenantID == tenantID && wanted[acc.Code] {
			out[acc.Code] = acc
		}
	}
	return out, nil
}

func (s *memStore) ListAccounts(_ context.Context, tenantID string) ([]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Account
	for _, acc := range s.accounts {
		if acc.TenantID == tenantID {
			out = append(out, acc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return domain.CompareCodes(out[i].Code, out[j].Code) < 0 })
	return out, nil
}

func (s *memStore) CountSystemAccounts(_ context.Context, tenantID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, acc := range s.accounts {
		if acc.TenantID == tenantID && acc.IsSystem {
			n++
		}
	}
	return n, nil
}

func (s *memStore) CountChildren(_ context.Context, tenantID, accountID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, acc := range s.accounts {
		if acc.TenantID == tenantID && acc.ParentAccountID == accountID {
			n++
		}
	}
	return n, nil
}

func (s *memStore) saveAccountLocked(account domain.Account) error {
	for _, acc := range s.accounts {
		if acc.TenantID == account.TenantID && acc.Code == account.Code {
			return fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, account.Code)
		}
	}
	s.accounts[account.AccountID] = account
	return nil
}

func (s *memStore) SaveAccount(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveAccountLocked(account)
}

func (s *memStore) SaveAccounts(_ context.Context, accounts []domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range accounts {
		if err := s.saveAccountLocked(acc); err != nil {
			return err
		}
	}
	return nil
}

func (s *memStore) UpdateAccount(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.AccountID]; !ok {
		return apperrors.NewNotFoundError("account " + account.AccountID)
	}
	s.accounts[account.AccountID] = account
	return nil
}

// --- periods ---

func (s *memStore) FindPeriodByID(_ context.Context, tenantID, periodID string) (*domain.AccountingPeriod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.periods[periodID]
	if !ok || p.TenantID != tenantID {
		return nil, apperrors.NewNotFoundError("period " + periodID)
	}
	return &p, nil
}

func (s *memStore) FindPeriodByYearMonth(_ context.Context, tenantID string, year, month int) (*domain.AccountingPeriod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.periods {
		if p.TenantID == tenantID && p.Year == year && p.Month == month {
			return &p, nil
		}
	}
	return nil, apperrors.NewNotFoundError("period " + domain.PeriodLabel(year, month))
}

func (s *memStore) ListPeriods(_ context.Context, tenantID string, year *int) ([]domain.AccountingPeriod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.AccountingPeriod
	for _, p := range s.periods {
		if p.TenantID == tenantID && (year == nil || p.Year == *year) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label() < out[j].Label() })
	return out, nil
}

func (s *memStore) CountDraftEntries(_ context.Context, tenantID, periodID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.entries {
		if e.TenantID == tenantID && e.PeriodID == periodID && e.Status == domain.Draft {
			n++
		}
	}
	return n, nil
}

func (s *memStore) SavePeriod(_ context.Context, period domain.AccountingPeriod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.periods {
		if p.TenantID == period.TenantID && p.Year == period.Year && p.Month == period.Month {
			return apperrors.ErrDuplicate
		}
	}
	s.periods[period.PeriodID] = period
	return nil
}

func (s *memStore) ClosePeriod(_ context.Context, tenantID, periodID, closedBy string, closedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.periods[periodID]
	if !ok || p.TenantID != tenantID {
		return apperrors.NewNotFoundError("period " + periodID)
	}
	if p.Status != domain.PeriodOpen {
		return apperrors.ErrInvalidState
	}
	p.Status = domain.PeriodClosed
	p.ClosedBy = closedBy
	p.ClosedAt = &closedAt
	s.periods[periodID] = p
	return nil
}

// --- journal ---

func (s *memStore) FindEntryByID(_ context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[entryID]
	if !ok || e.TenantID != tenantID {
		return nil, apperrors.NewNotFoundError("journal entry " + entryID)
	}
	e.Lines = append([]domain.JournalLine(nil), e.Lines...)
	return &e, nil
}

func (s *memStore) LockEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	return s.FindEntryByID(ctx, tenantID, entryID)
}

func (s *memStore) ListEntries(_ context.Context, tenantID string, filter domain.EntryFilter) ([]domain.JournalEntry, *string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cursorDate time.Time
	var cursorNumber int64
	if filter.NextToken != nil {
		var err error
		if cursorDate, cursorNumber, err = pagination.DecodeToken(*filter.NextToken); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}

	var out []domain.JournalEntry
	for _, e := range s.entries {
		switch {
		case e.TenantID != tenantID,
			filter.Status != "" && e.Status != filter.Status,
			filter.SourceType != "" && e.SourceType != filter.SourceType,
			filter.DateFrom != nil && e.EntryDate.Before(*filter.DateFrom),
			filter.DateTo != nil && e.EntryDate.After(*filter.DateTo),
			filter.NextToken != nil && !pagination.After(e.EntryDate, e.Number, cursorDate, cursorNumber):
			continue
		}
		e.Lines = nil
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return pagination.After(out[j].EntryDate, out[j].Number, out[i].EntryDate, out[i].Number) })

	var next *string
	if len(out) > filter.Limit {
		out = out[:filter.Limit]
		last := out[len(out)-1]
		token := pagination.EncodeToken(last.EntryDate, last.Number)
		next = &token
	}
	return out, next, nil
}

func (s *memStore) NextEntryNumber(_ context.Context, tenantID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sequences[tenantID]++
	return s.sequences[tenantID], nil
}

func (s *memStore) SaveEntry(_ context.Context, entry domain.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.TenantID == entry.TenantID && e.Number == entry.Number {
			return fmt.Errorf("%w: entry number %d", apperrors.ErrDuplicate, entry.Number)
		}
	}
	entry.Lines = append([]domain.JournalLine(nil), entry.Lines...)
	s.entries[entry.EntryID] = entry
	return nil
}

func (s *memStore) transition(tenantID, entryID string, from domain.EntryStatus, apply func(*domain.JournalEntry)) error {
	e, ok := s.entries[entryID]
	if !ok || e.TenantID != tenantID {
		return apperrors.NewNotFoundError("journal entry " + entryID)
	}
	if e.Status != from {
		return fmt.Errorf("%w: entry is %s", apperrors.ErrInvalidState, e.Status)
	}
	apply(&e)
	s.entries[entryID] = e
	return nil
}

func (s *memStore) MarkPosted(_ context.Context, tenantID, entryID, postedBy string, postedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transition(tenantID, entryID, domain.Draft, func(e *domain.JournalEntry) {
		e.Status = domain.Posted
		e.PostedBy = postedBy
		e.PostedAt = &postedAt
	})
}

func (s *memStore) MarkReversed(_ context.Context, tenantID, entryID, reversalID, updatedBy string, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.transition(tenantID, entryID, domain.Posted, func(e *domain.JournalEntry) {
		e.Status = domain.Reversed
		e.ReversedByID = &reversalID
		e.LastUpdatedBy = updatedBy
		e.LastUpdatedAt = updatedAt
	})
	if err != nil {
		return err
	}
	reversal := s.entries[reversalID]
	reversal.ReversalOfID = &entryID
	s.entries[reversalID] = reversal
	return nil
}

func (s *memStore) DeleteDraft(_ context.Context, tenantID, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[entryID]
	if !ok || e.TenantID != tenantID {
		return apperrors.NewNotFoundError("journal entry " + entryID)
	}
	if e.Status != domain.Draft {
		return apperrors.ErrInvalidState
	}
	delete(s.entries, entryID)
	return nil
}

// --- ledger and reports ---

func counts(e domain.JournalEntry) bool {
	return e.Status == domain.Posted || e.Status == domain.Reversed
}

func (s *memStore) ListPostedLines(_ context.Context, tenantID, accountID string, from, to *time.Time) ([]domain.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	type sortable struct {
		domain.LedgerEntry
		line int
	}
	var rows []sortable
	for _, e := range s.entries {
		if e.TenantID != tenantID || !counts(e) ||
			(from != nil && e.EntryDate.Before(*from)) || (to != nil && e.EntryDate.After(*to)) {
			continue
		}
		for _, l := range e.Lines {
			if l.AccountID != accountID {
				continue
			}
			rows = append(rows, sortable{domain.LedgerEntry{
				EntryID:         e.EntryID,
				Number:          e.Number,
				EntryDate:       e.EntryDate,
				Description:     e.Description,
				Reference:       e.Reference,
				LineDescription: l.Description,
				Debit:           l.Debit,
				Credit:          l.Credit,
			}, l.LineNumber})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.EntryDate.Equal(b.EntryDate) {
			return a.EntryDate.Before(b.EntryDate)
		}
		if a.Number != b.Number {
			return a.Number < b.Number
		}
		return a.line < b.line
	})
	out := make([]domain.LedgerEntry, len(rows))
	for i, r := range rows {
		out[i] = r.LedgerEntry
	}
	return out, nil
}

func (s *memStore) SumPostedBefore(_ context.Context, tenantID, accountID string, before time.Time) (decimal.Decimal, decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	debit, credit := decimal.Zero, decimal.Zero
	for _, e := range s.entries {
		if e.TenantID != tenantID || !counts(e) || !e.EntryDate.Before(before) {
			continue
		}
		for _, l := range e.Lines {
			if l.AccountID == accountID {
				debit = debit.Add(l.Debit)
				credit = credit.Add(l.Credit)
			}
		}
	}
	return debit, credit, nil
}

func (s *memStore) GetTrialBalanceData(_ context.Context, tenantID string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byAccount := map[string]*domain.TrialBalanceRow{}
	for _, e := range s.entries {
		if e.TenantID != tenantID || !counts(e) || e.EntryDate.After(asOf) {
			continue
		}
		for _, l := range e.Lines {
			row, ok := byAccount[l.AccountID]
			if !ok {
				acc := s.accounts[l.AccountID]
				row = &domain.TrialBalanceRow{
					AccountID:   acc.AccountID,
					Code:        acc.Code,
					AccountName: acc.Name,
					AccountType: acc.AccountType,
					Nature:      acc.Nature,
					Debit:       decimal.Zero,
					Credit:      decimal.Zero,
				}
				byAccount[l.AccountID] = row
			}
			row.Debit = row.Debit.Add(l.Debit)
			row.Credit = row.Credit.Add(l.Credit)
		}
	}
	out := make([]domain.TrialBalanceRow, 0, len(byAccount))
	for _, row := range byAccount {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return domain.CompareCodes(out[i].Code, out[j].Code) < 0 })
	return out, nil
}
