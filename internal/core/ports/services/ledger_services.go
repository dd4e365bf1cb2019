package services

import (
	"context"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// LedgerReaderSvc computes running balances from posted entries.
type LedgerReaderSvc interface {
	// GetLedgerEntries returns the account's posted lines in [dateFrom, dateTo] with running balances.
	GetLedgerEntries(ctx context.Context, tenantID, accountID string, dateFrom, dateTo *time.Time) (*domain.AccountLedger, error)
}
