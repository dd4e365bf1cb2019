package services

import (
	"context"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// PeriodReaderSvc defines read operations on accounting periods
type PeriodReaderSvc interface {
	// ResolvePeriod finds the period a date falls in, or NotFound.
	ResolvePeriod(ctx context.Context, tenantID string, date time.Time) (*domain.AccountingPeriod, error)

	GetPeriodByID(ctx context.Context, tenantID, periodID string) (*domain.AccountingPeriod, error)

	ListPeriods(ctx context.Context, tenantID string, year *int) ([]domain.AccountingPeriod, error)
}

// PeriodWriterSvc defines write operations on accounting periods
type PeriodWriterSvc interface {
	// OpenPeriod creates the (year, month) period. AlreadyExists if it is already there.
	OpenPeriod(ctx context.Context, tenantID string, year, month int, actorID string) (*domain.AccountingPeriod, error)

	// ClosePeriod closes an OPEN period for good.
	ClosePeriod(ctx context.Context, tenantID, periodID, actorID string) (*domain.AccountingPeriod, error)
}

// PeriodSvcFacade combines all period service interfaces
type PeriodSvcFacade interface {
	PeriodReaderSvc
	PeriodWriterSvc
}
