package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/google/uuid"
)

// periodService implements the PeriodSvcFacade interface
type periodService struct {
	BaseService
	periodRepo            portsrepo.PeriodRepositoryFacade
	txManager             portsrepo.TransactionManager
	rejectCloseWithDrafts bool
}

// PeriodOption is a functional option for configuring the period service
type PeriodOption func(*periodService)

// WithPeriodTransactions makes the close check and the close itself one transaction.
func WithPeriodTransactions(tm portsrepo.TransactionManager) PeriodOption {
	return func(s *periodService) {
		if tm != nil {
			s.txManager = tm
		}
	}
}

// WithRejectCloseWithDrafts controls whether a period holding DRAFT entries may be closed.
func WithRejectCloseWithDrafts(reject bool) PeriodOption {
	return func(s *periodService) {
		s.rejectCloseWithDrafts = reject
	}
}

// NewPeriodService creates a new period service with the provided options
func NewPeriodService(repo portsrepo.PeriodRepositoryFacade, options ...PeriodOption) portssvc.PeriodSvcFacade {
	svc := &periodService{
		periodRepo:            repo,
		txManager:             noTransactions{},
		rejectCloseWithDrafts: true,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

func (s *periodService) ResolvePeriod(ctx context.Context, tenantID string, date time.Time) (*domain.AccountingPeriod, error) {
	year, month := domain.YearMonthOf(date)
	period, err := s.periodRepo.FindPeriodByYearMonth(ctx, tenantID, year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no period for %s", apperrors.ErrNotFound, domain.PeriodLabel(year, month))
		}
		s.LogError(ctx, err, "Failed to resolve period", slog.String("period", domain.PeriodLabel(year, month)))
		return nil, err
	}
	return period, nil
}

func (s *periodService) GetPeriodByID(ctx context.Context, tenantID, periodID string) (*domain.AccountingPeriod, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, tenantID, periodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: period %s", apperrors.ErrNotFound, periodID)
		}
		s.LogError(ctx, err, "Failed to find period", slog.String("period_id", periodID))
		return nil, err
	}
	return period, nil
}

func (s *periodService) ListPeriods(ctx context.Context, tenantID string, year *int) ([]domain.AccountingPeriod, error) {
	periods, err := s.periodRepo.ListPeriods(ctx, tenantID, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to list periods", slog.String("tenant_id", tenantID))
		return nil, err
	}
	return periods, nil
}

func (s *periodService) OpenPeriod(ctx context.Context, tenantID string, year, month int, actorID string) (*domain.AccountingPeriod, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12, got %d", apperrors.ErrValidation, month)
	}
	if year < 1900 || year > 9999 {
		return nil, fmt.Errorf("%w: year %d out of range", apperrors.ErrValidation, year)
	}

	start, end := domain.PeriodBounds(year, month)
	now := time.Now().UTC()
	period := domain.AccountingPeriod{
		PeriodID:    uuid.NewString(),
		TenantID:    tenantID,
		Year:        year,
		Month:       month,
		StartDate:   start,
		EndDate:     end,
		Status:      domain.PeriodOpen,
		AuditFields: domain.NewAuditFields(actorID, now),
	}

	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			err = fmt.Errorf("%w: period %s already exists", apperrors.ErrAlreadyExists, period.Label())
		}
		s.LogFailure(ctx, err, "Failed to open period", slog.String("period", period.Label()))
		return nil, err
	}

	s.LogInfo(ctx, "Period opened", slog.String("period_id", period.PeriodID), slog.String("period", period.Label()))
	return &period, nil
}

func (s *periodService) ClosePeriod(ctx context.Context, tenantID, periodID, actorID string) (*domain.AccountingPeriod, error) {
	var closed *domain.AccountingPeriod
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		period, err := s.GetPeriodByID(ctx, tenantID, periodID)
		if err != nil {
			return err
		}
		if !period.IsOpen() {
			return fmt.Errorf("%w: period %s is already closed", apperrors.ErrInvalidState, period.Label())
		}
		if s.rejectCloseWithDrafts {
			drafts, err := s.periodRepo.CountDraftEntries(ctx, tenantID, periodID)
			if err != nil {
				return err
			}
			if drafts > 0 {
				return fmt.Errorf("%w: period %s still has %d draft entr(ies); post or discard them first", apperrors.ErrInvalidState, period.Label(), drafts)
			}
		}

		now := time.Now().UTC()
		if err := s.periodRepo.ClosePeriod(ctx, tenantID, periodID, actorID, now); err != nil {
			return err
		}
		period.Status = domain.PeriodClosed
		period.ClosedBy = actorID
		period.ClosedAt = &now
		period.Touch(actorID, now)
		closed = period
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to close period", slog.String("period_id", periodID))
		return nil, err
	}

	s.LogInfo(ctx, "Period closed", slog.String("period_id", periodID), slog.String("period", closed.Label()))
	return closed, nil
}
