package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/general_ledger/internal/models"
	"github.com/SscSPs/general_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const periodColumns = `period_id, tenant_id, year, month, start_date, end_date, status, closed_by, closed_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPeriodRepository struct {
	BaseRepository
}

func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

// SavePeriod inserts a new accounting period.
func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	m := mapping.ToModelPeriod(period)
	query := `
		INSERT INTO accounting_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.PeriodID, m.TenantID, m.Year, m.Month, m.StartDate, m.EndDate, m.Status, m.ClosedBy, m.ClosedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "save period "+period.Label())
	}
	return nil
}

// ClosePeriod moves an OPEN period to CLOSED.
func (r *PgxPeriodRepository) ClosePeriod(ctx context.Context, tenantID, periodID, closedBy string, closedAt time.Time) error {
	query := `
		UPDATE accounting_periods
		SET status = $3, closed_by = $4, closed_at = $5, last_updated_at = $5, last_updated_by = $4
		WHERE tenant_id = $1 AND period_id = $2 AND status = $6;
	`
	tag, err := r.db(ctx).Exec(ctx, query, tenantID, periodID, string(domain.PeriodClosed), closedBy, closedAt, string(domain.PeriodOpen))
	if err != nil {
		return apperrors.NewAppError(500, "failed to close period", err)
	}
	if tag.RowsAffected() == 0 {
		// distinguish a missing period from one that is already closed
		if _, err := r.FindPeriodByID(ctx, tenantID, periodID); err != nil {
			return err
		}
		return fmt.Errorf("%w: period %s is not open", apperrors.ErrInvalidState, periodID)
	}
	return nil
}

func (r *PgxPeriodRepository) findOne(ctx context.Context, notFound string, where string, args ...any) (*domain.AccountingPeriod, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT `+periodColumns+` FROM accounting_periods WHERE `+where, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query period", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.AccountingPeriod])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrNotFound, notFound)
		}
		return nil, apperrors.NewAppError(500, "failed to scan period", err)
	}
	p := mapping.ToDomainPeriod(m)
	return &p, nil
}

// FindPeriodByID retrieves a period of the tenant by ID.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, tenantID, periodID string) (*domain.AccountingPeriod, error) {
	return r.findOne(ctx, "period "+periodID, `tenant_id = $1 AND period_id = $2`, tenantID, periodID)
}

// FindPeriodByYearMonth retrieves the tenant's period for (year, month).
func (r *PgxPeriodRepository) FindPeriodByYearMonth(ctx context.Context, tenantID string, year, month int) (*domain.AccountingPeriod, error) {
	return r.findOne(ctx, "period "+domain.PeriodLabel(year, month),
		`tenant_id = $1 AND year = $2 AND month = $3`, tenantID, year, month)
}

// ListPeriods lists the tenant's periods chronologically, optionally for one year.
func (r *PgxPeriodRepository) ListPeriods(ctx context.Context, tenantID string, year *int) ([]domain.AccountingPeriod, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM accounting_periods
		WHERE tenant_id = $1 AND ($2::int IS NULL OR year = $2)
		ORDER BY year, month;
	`
	rows, err := r.db(ctx).Query(ctx, query, tenantID, year)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list periods", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AccountingPeriod])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan periods", err)
	}
	periods := make([]domain.AccountingPeriod, len(ms))
	for i, m := range ms {
		periods[i] = mapping.ToDomainPeriod(m)
	}
	return periods, nil
}

// CountDraftEntries returns how many DRAFT entries are dated into the period.
func (r *PgxPeriodRepository) CountDraftEntries(ctx context.Context, tenantID, periodID string) (int, error) {
	var n int
	err := r.db(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM journal_entries WHERE tenant_id = $1 AND period_id = $2 AND status = $3`,
		tenantID, periodID, string(domain.Draft),
	).Scan(&n)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count draft entries", err)
	}
	return n, nil
}
