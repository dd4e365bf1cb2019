package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow is one postable account's posted totals in a trial balance.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Nature      AccountNature   `json:"nature"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"` // nature-signed
}

// TrialBalance lists posted totals per account up to a date. TotalDebit equals TotalCredit
// whenever every stored entry is balanced.
type TrialBalance struct {
	AsOf        time.Time         `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}
