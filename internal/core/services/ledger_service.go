package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ledgerService reads account ledgers from posted lines only.
type ledgerService struct {
	BaseService
	accounts   portssvc.AccountPlanReaderSvc
	ledgerRepo portsrepo.LedgerRepository
}

// NewLedgerService creates a new ledger reader.
func NewLedgerService(accounts portssvc.AccountPlanReaderSvc, ledgerRepo portsrepo.LedgerRepository) portssvc.LedgerReaderSvc {
	return &ledgerService{accounts: accounts, ledgerRepo: ledgerRepo}
}

var _ portssvc.LedgerReaderSvc = (*ledgerService)(nil)

func (s *ledgerService) GetLedgerEntries(ctx context.Context, tenantID, accountID string, dateFrom, dateTo *time.Time) (*domain.AccountLedger, error) {
	if dateFrom != nil && dateTo != nil && dateFrom.After(*dateTo) {
		return nil, fmt.Errorf("%w: dateFrom is after dateTo", apperrors.ErrValidation)
	}
	account, err := s.accounts.GetAccountByID(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	opening := decimal.Zero
	if dateFrom != nil {
		debit, credit, err := s.ledgerRepo.SumPostedBefore(ctx, tenantID, accountID, *dateFrom)
		if err != nil {
			s.LogError(ctx, err, "Failed to compute opening balance", slog.String("account_id", accountID))
			return nil, err
		}
		if opening, err = accounting.SignedAmount(debit, credit, account.Nature); err != nil {
			return nil, err
		}
	}

	entries, err := s.ledgerRepo.ListPostedLines(ctx, tenantID, accountID, dateFrom, dateTo)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger lines", slog.String("account_id", accountID))
		return nil, err
	}

	ledger, err := RunningBalance(*account, opening, entries)
	if err != nil {
		return nil, err
	}
	ledger.DateFrom = dateFrom
	ledger.DateTo = dateTo
	return ledger, nil
}

// RunningBalance fills each entry's balance starting from opening, applying the account's
// nature: DEBIT accounts add debits and subtract credits, CREDIT accounts the inverse.
func RunningBalance(account domain.Account, opening decimal.Decimal, entries []domain.LedgerEntry) (*domain.AccountLedger, error) {
	ledger := &domain.AccountLedger{
		Account:        account,
		OpeningBalance: opening,
		TotalDebit:     decimal.Zero,
		TotalCredit:    decimal.Zero,
		Entries:        make([]domain.LedgerEntry, len(entries)),
	}
	balance := opening
	for i, e := range entries {
		delta, err := accounting.SignedAmount(e.Debit, e.Credit, account.Nature)
		if err != nil {
			return nil, err
		}
		balance = balance.Add(delta)
		e.Balance = balance
		ledger.Entries[i] = e
		ledger.TotalDebit = ledger.TotalDebit.Add(e.Debit)
		ledger.TotalCredit = ledger.TotalCredit.Add(e.Credit)
	}
	ledger.ClosingBalance = balance
	return ledger, nil
}
