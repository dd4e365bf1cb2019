package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// PeriodReader defines read operations for accounting periods
type PeriodReader interface {
	// FindPeriodByID retrieves a period of the tenant by id.
	FindPeriodByID(ctx context.Context, tenantID, periodID string) (*domain.AccountingPeriod, error)

	// FindPeriodByYearMonth retrieves the period of the tenant covering (year, month).
	FindPeriodByYearMonth(ctx context.Context, tenantID string, year, month int) (*domain.AccountingPeriod, error)

	// ListPeriods lists the tenant's periods in chronological order, optionally for one year.
	ListPeriods(ctx context.Context, tenantID string, year *int) ([]domain.AccountingPeriod, error)

	// CountDraftEntries returns how many DRAFT entries are dated into the period.
	CountDraftEntries(ctx context.Context, tenantID, periodID string) (int, error)
}

// PeriodWriter defines write operations for accounting periods
type PeriodWriter interface {
	// SavePeriod persists a new period. Returns ErrDuplicate if (tenant, year, month) exists.
	SavePeriod(ctx context.Context, period domain.AccountingPeriod) error

	// ClosePeriod marks an OPEN period CLOSED. Returns ErrInvalidState if it was not OPEN.
	ClosePeriod(ctx context.Context, tenantID, periodID, closedBy string, closedAt time.Time) error
}

// PeriodRepositoryFacade combines all period-related repository interfaces
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
}
