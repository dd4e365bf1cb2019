package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerParams defines query parameters for an account ledger.
type LedgerParams struct {
	DateFrom string `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
}

// Range parses the optional bounds.
func (p LedgerParams) Range() (*time.Time, *time.Time, error) {
	from, err := ParseOptionalDate(p.DateFrom)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid dateFrom", apperrors.ErrValidation)
	}
	to, err := ParseOptionalDate(p.DateTo)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid dateTo", apperrors.ErrValidation)
	}
	return from, to, nil
}

// LedgerEntryResponse is one posted line with the balance after it.
type LedgerEntryResponse struct {
	EntryID         string          `json:"entryID"`
	Number          int64           `json:"number"`
	Date            string          `json:"date"`
	Description     string          `json:"description"`
	Reference       string          `json:"reference,omitempty"`
	LineDescription string          `json:"lineDescription,omitempty"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	Balance         decimal.Decimal `json:"balance"`
}

// AccountLedgerResponse is the ledger of one account.
type AccountLedgerResponse struct {
	Account        AccountResponse       `json:"account"`
	DateFrom       string                `json:"dateFrom,omitempty"`
	DateTo         string                `json:"dateTo,omitempty"`
	OpeningBalance decimal.Decimal       `json:"openingBalance"`
	TotalDebit     decimal.Decimal       `json:"totalDebit"`
	TotalCredit    decimal.Decimal       `json:"totalCredit"`
	ClosingBalance decimal.Decimal       `json:"closingBalance"`
	Entries        []LedgerEntryResponse `json:"entries"`
}

// ToAccountLedgerResponse converts a domain.AccountLedger.
func ToAccountLedgerResponse(l *domain.AccountLedger) AccountLedgerResponse {
	res := AccountLedgerResponse{
		Account:        ToAccountResponse(&l.Account),
		OpeningBalance: l.OpeningBalance,
		TotalDebit:     l.TotalDebit,
		TotalCredit:    l.TotalCredit,
		ClosingBalance: l.ClosingBalance,
		Entries:        make([]LedgerEntryResponse, len(l.Entries)),
	}
	if l.DateFrom != nil {
		res.DateFrom = FormatDate(*l.DateFrom)
	}
	if l.DateTo != nil {
		res.DateTo = FormatDate(*l.DateTo)
	}
	for i, e := range l.Entries {
		res.Entries[i] = LedgerEntryResponse{
			EntryID:         e.EntryID,
			Number:          e.Number,
			Date:            FormatDate(e.EntryDate),
			Description:     e.Description,
			Reference:       e.Reference,
			LineDescription: e.LineDescription,
			Debit:           e.Debit,
			Credit:          e.Credit,
			Balance:         e.Balance,
		}
	}
	return res
}

// TrialBalanceParams defines query parameters for a trial balance.
type TrialBalanceParams struct {
	AsOf string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
}

// TrialBalanceRowResponse is one account's posted totals.
type TrialBalanceRowResponse struct {
	AccountID   string               `json:"accountID"`
	Code        string               `json:"code"`
	AccountName string               `json:"accountName"`
	AccountType domain.AccountType   `json:"accountType"`
	Nature      domain.AccountNature `json:"nature"`
	Debit       decimal.Decimal      `json:"debit"`
	Credit      decimal.Decimal      `json:"credit"`
	Balance     decimal.Decimal      `json:"balance"`
}

// TrialBalanceResponse is the trial balance as of a date.
type TrialBalanceResponse struct {
	AsOf        string                    `json:"asOf"`
	Rows        []TrialBalanceRowResponse `json:"rows"`
	TotalDebit  decimal.Decimal           `json:"totalDebit"`
	TotalCredit decimal.Decimal           `json:"totalCredit"`
}

// ToTrialBalanceResponse converts a domain.TrialBalance.
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(tb.Rows))
	for i, r := range tb.Rows {
		rows[i] = TrialBalanceRowResponse(r)
	}
	return TrialBalanceResponse{
		AsOf:        FormatDate(tb.AsOf),
		Rows:        rows,
		TotalDebit:  tb.TotalDebit,
		TotalCredit: tb.TotalCredit,
	}
}
