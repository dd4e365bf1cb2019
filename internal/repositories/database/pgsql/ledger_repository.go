package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// postedStatuses are the entry statuses whose lines make up the ledger.
var postedStatuses = []string{string(domain.Posted), string(domain.Reversed)}

type pgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &pgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepository = (*pgxLedgerRepository)(nil)

// ListPostedLines returns the account's posted movements within the optional date range.
func (r *pgxLedgerRepository) ListPostedLines(ctx context.Context, tenantID, accountID string, from, to *time.Time) ([]domain.LedgerEntry, error) {
	query := `
		SELECT e.entry_id, e.number, e.entry_date, e.description, e.reference,
			l.description AS line_description, l.debit, l.credit
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.tenant_id = $1
			AND l.account_id = $2
			AND e.status = ANY($3)
			AND ($4::date IS NULL OR e.entry_date >= $4)
			AND ($5::date IS NULL OR e.entry_date <= $5)
		ORDER BY e.entry_date, e.number, l.line_number;
	`
	rows, err := r.db(ctx).Query(ctx, query, tenantID, accountID, postedStatuses, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger lines", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LedgerEntry, error) {
		var e domain.LedgerEntry
		err := row.Scan(
			&e.EntryID,
			&e.Number,
			&e.EntryDate,
			&e.Description,
			&e.Reference,
			&e.LineDescription,
			&e.Debit,
			&e.Credit,
		)
		return e, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan ledger lines", err)
	}
	return entries, nil
}

// SumPostedBefore totals the account's posted debits and credits dated before the given day.
func (r *pgxLedgerRepository) SumPostedBefore(ctx context.Context, tenantID, accountID string, before time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.tenant_id = $1
			AND l.account_id = $2
			AND e.status = ANY($3)
			AND e.entry_date < $4;
	`
	var debit, credit decimal.Decimal
	if err := r.db(ctx).QueryRow(ctx, query, tenantID, accountID, postedStatuses, before).Scan(&debit, &credit); err != nil {
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to sum ledger lines", err)
	}
	return debit, credit, nil
}
