package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/utils/accounting"
	"github.com/google/uuid"
)

const (
	defaultListLimit = 20
	maxListLimit     = 200
)

// journalService provides the journal entry lifecycle.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
	periods     portssvc.PeriodReaderSvc
	txManager   portsrepo.TransactionManager
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader, periods portssvc.PeriodReaderSvc, txManager portsrepo.TransactionManager) portssvc.JournalSvcFacade {
	if txManager == nil {
		txManager = noTransactions{}
	}
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		periods:     periods,
		txManager:   txManager,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CreateManualEntry validates input and stores it as a DRAFT. Nothing is written unless every
// check passes; number assignment and the insert share one transaction.
func (s *journalService) CreateManualEntry(ctx context.Context, tenantID, actorID string, input domain.JournalEntryInput) (*domain.JournalEntry, error) {
	var created *domain.JournalEntry
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		entry, err := s.createDraft(ctx, tenantID, actorID, input)
		if err != nil {
			return err
		}
		created = entry
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Journal entry rejected",
			slog.String("tenant_id", tenantID),
			slog.String("source_type", string(input.SourceType)),
			slog.String("source_id", input.SourceID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("entry_id", created.EntryID),
		slog.Int64("number", created.Number),
		slog.String("total", created.TotalDebit.StringFixed(accounting.AmountPlaces)))
	return created, nil
}

func (s *journalService) createDraft(ctx context.Context, tenantID, actorID string, input domain.JournalEntryInput) (*domain.JournalEntry, error) {
	// 1. structure and balance
	totals, err := accounting.ValidateLines(input.Lines)
	if err != nil {
		return nil, err
	}
	sourceType := input.SourceType
	if sourceType == "" {
		sourceType = domain.SourceManual
	}
	if !sourceType.IsValid() {
		return nil, fmt.Errorf("%w: unknown source type %q", apperrors.ErrValidation, sourceType)
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: entry date is required", apperrors.ErrValidation)
	}
	entryDate := calendarDate(input.Date)

	// 2. period gate
	period, err := s.periods.ResolvePeriod(ctx, tenantID, entryDate)
	if err != nil {
		return nil, err
	}
	if !period.IsOpen() {
		return nil, fmt.Errorf("%w: period %s is closed", apperrors.ErrPeriodClosed, period.Label())
	}

	// 3. accounts exist in the tenant and accept postings
	if err := s.checkAccounts(ctx, tenantID, input.Lines); err != nil {
		return nil, err
	}

	// 4. number
	number, err := s.journalRepo.NextEntryNumber(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	// 5. persist
	now := time.Now().UTC()
	entryID := uuid.NewString()
	lines := make([]domain.JournalLine, len(input.Lines))
	for i, l := range input.Lines {
		lines[i] = domain.JournalLine{
			LineID:         uuid.NewString(),
			EntryID:        entryID,
			LineNumber:     i + 1,
			AccountID:      l.AccountID,
			Description:    l.Description,
			Debit:          l.Debit,
			Credit:         l.Credit,
			CostCenterID:   l.CostCenterID,
			ThirdPartyID:   l.ThirdPartyID,
			ThirdPartyType: l.ThirdPartyType,
		}
	}
	entry := domain.JournalEntry{
		EntryID:     entryID,
		TenantID:    tenantID,
		Number:      number,
		EntryDate:   entryDate,
		PeriodID:    period.PeriodID,
		Description: input.Description,
		Reference:   input.Reference,
		SourceType:  sourceType,
		SourceID:    input.SourceID,
		Status:      domain.Draft,
		TotalDebit:  totals.TotalDebit,
		TotalCredit: totals.TotalCredit,
		Lines:       lines,
		AuditFields: domain.NewAuditFields(actorID, now),
	}
	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *journalService) checkAccounts(ctx context.Context, tenantID string, lines []domain.JournalLineInput) error {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.AccountID]; ok {
			continue
		}
		seen[l.AccountID] = struct{}{}
		ids = append(ids, l.AccountID)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, tenantID, ids)
	if err != nil {
		return err
	}

	var missing []string
	for _, id := range ids {
		if _, ok := accounts[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %d account(s) not found: %s", apperrors.ErrNotFound, len(missing), strings.Join(missing, ", "))
	}

	for _, id := range ids {
		acc := accounts[id]
		switch {
		case !acc.AcceptsEntries:
			return fmt.Errorf("%w: account %s (%s) is an aggregation account", apperrors.ErrAccountNotPostable, acc.Code, acc.Name)
		case !acc.IsActive:
			return fmt.Errorf("%w: account %s (%s) is inactive", apperrors.ErrAccountNotPostable, acc.Code, acc.Name)
		}
	}
	return nil
}

// PostEntry makes a DRAFT entry permanent and visible to the ledger.
func (s *journalService) PostEntry(ctx context.Context, tenantID, entryID, actorID string) (*domain.JournalEntry, error) {
	var posted *domain.JournalEntry
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		entry, err := s.lockEntry(ctx, tenantID, entryID)
		if err != nil {
			return err
		}
		if entry.Status != domain.Draft {
			return fmt.Errorf("%w: only DRAFT entries can be posted (entry #%d is %s)", apperrors.ErrInvalidState, entry.Number, entry.Status)
		}
		period, err := s.periods.GetPeriodByID(ctx, tenantID, entry.PeriodID)
		if err != nil {
			return err
		}
		if !period.IsOpen() {
			return fmt.Errorf("%w: period %s is closed", apperrors.ErrPeriodClosed, period.Label())
		}

		now := time.Now().UTC()
		if err := s.journalRepo.MarkPosted(ctx, tenantID, entryID, actorID, now); err != nil {
			return err
		}
		entry.Status = domain.Posted
		entry.PostedBy = actorID
		entry.PostedAt = &now
		entry.Touch(actorID, now)
		posted = entry
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to post journal entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry posted", slog.String("entry_id", entryID), slog.Int64("number", posted.Number))
	return posted, nil
}

// ReverseEntry books a balance-swapped copy of a POSTED entry and marks the original
// REVERSED. Creation, posting and marking share one transaction so a failure leaves the
// original untouched.
func (s *journalService) ReverseEntry(ctx context.Context, tenantID, entryID, actorID string, reverseDate time.Time) (*domain.JournalEntry, error) {
	var reversal *domain.JournalEntry
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		original, err := s.lockEntry(ctx, tenantID, entryID)
		if err != nil {
			return err
		}
		if original.Status != domain.Posted {
			return fmt.Errorf("%w: only POSTED entries can be reversed (entry #%d is %s)", apperrors.ErrInvalidState, original.Number, original.Status)
		}

		lines := make([]domain.JournalLineInput, len(original.Lines))
		for i, l := range original.Lines {
			lines[i] = l.Swapped()
		}
		input := domain.JournalEntryInput{
			Date:        reverseDate,
			Description: fmt.Sprintf("Reverso de asiento #%d", original.Number),
			Reference:   fmt.Sprintf("REV-%d", original.Number),
			SourceType:  original.SourceType,
			SourceID:    original.SourceID,
			Lines:       lines,
		}

		// Both calls join this transaction.
		draft, err := s.CreateManualEntry(ctx, tenantID, actorID, input)
		if err != nil {
			return err
		}
		reversal, err = s.PostEntry(ctx, tenantID, draft.EntryID, actorID)
		if err != nil {
			return err
		}
		if reversal.Lines == nil {
			reversal.Lines = draft.Lines
		}

		now := time.Now().UTC()
		if err := s.journalRepo.MarkReversed(ctx, tenantID, original.EntryID, reversal.EntryID, actorID, now); err != nil {
			return err
		}
		originalID := original.EntryID
		reversal.ReversalOfID = &originalID
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to reverse journal entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry reversed",
		slog.String("entry_id", entryID),
		slog.String("reversal_id", reversal.EntryID),
		slog.Int64("reversal_number", reversal.Number))
	return reversal, nil
}

// DiscardEntry deletes a DRAFT entry and its lines. Its number is not reused.
func (s *journalService) DiscardEntry(ctx context.Context, tenantID, entryID, actorID string) error {
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		entry, err := s.lockEntry(ctx, tenantID, entryID)
		if err != nil {
			return err
		}
		if entry.Status != domain.Draft {
			return fmt.Errorf("%w: only DRAFT entries can be discarded (entry #%d is %s)", apperrors.ErrInvalidState, entry.Number, entry.Status)
		}
		return s.journalRepo.DeleteDraft(ctx, tenantID, entryID)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to discard journal entry", slog.String("entry_id", entryID))
		return err
	}
	s.LogInfo(ctx, "Journal entry discarded", slog.String("entry_id", entryID), slog.String("actor_id", actorID))
	return nil
}

func (s *journalService) lockEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.LockEntry(ctx, tenantID, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
		}
		return nil, err
	}
	return entry, nil
}

func (s *journalService) GetEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, tenantID, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
		}
		s.LogError(ctx, err, "Failed to get journal entry", slog.String("entry_id", entryID))
		return nil, err
	}
	sort.Slice(entry.Lines, func(i, j int) bool { return entry.Lines[i].LineNumber < entry.Lines[j].LineNumber })
	return entry, nil
}

func (s *journalService) ListEntries(ctx context.Context, tenantID string, filter domain.EntryFilter) ([]domain.JournalEntry, *string, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		return nil, nil, fmt.Errorf("%w: dateFrom is after dateTo", apperrors.ErrValidation)
	}
	if filter.SourceType != "" && !filter.SourceType.IsValid() {
		return nil, nil, fmt.Errorf("%w: unknown source type %q", apperrors.ErrValidation, filter.SourceType)
	}

	entries, next, err := s.journalRepo.ListEntries(ctx, tenantID, filter)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to list journal entries", slog.String("tenant_id", tenantID))
		return nil, nil, err
	}
	return entries, next, nil
}
