package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one posted line of an account's ledger with the balance after it.
type LedgerEntry struct {
	EntryID         string          `json:"entryID"`
	Number          int64           `json:"number"`
	EntryDate       time.Time       `json:"entryDate"`
	Description     string          `json:"description"`
	Reference       string          `json:"reference"`
	LineDescription string          `json:"lineDescription"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	Balance         decimal.Decimal `json:"balance"`
}

// AccountLedger is the running-balance view of one account over a date range.
type AccountLedger struct {
	Account        Account         `json:"account"`
	DateFrom       *time.Time      `json:"dateFrom,omitempty"`
	DateTo         *time.Time      `json:"dateTo,omitempty"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	Entries        []LedgerEntry   `json:"entries"`
}
