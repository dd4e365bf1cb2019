package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerRepository reads the posted history of an account.
// Lines of POSTED and REVERSED entries count; DRAFT lines never do.
type LedgerRepository interface {
	// ListPostedLines returns the account's posted lines within [from, to], ordered by entry
	// date then entry number. Running balances are left zero.
	ListPostedLines(ctx context.Context, tenantID, accountID string, from, to *time.Time) ([]domain.LedgerEntry, error)

	// SumPostedBefore returns the total debit and credit of the account's posted lines dated
	// strictly before the given day.
	SumPostedBefore(ctx context.Context, tenantID, accountID string, before time.Time) (decimal.Decimal, decimal.Decimal, error)
}
