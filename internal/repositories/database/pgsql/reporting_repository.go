package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetTrialBalanceData sums posted lines per account up to and including asOf.
// Accounts without posted movement do not appear.
func (r *reportingRepository) GetTrialBalanceData(ctx context.Context, tenantID string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.account_id,
			a.code,
			a.name AS account_name,
			a.account_type,
			a.nature,
			SUM(l.debit) AS total_debit,
			SUM(l.credit) AS total_credit
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE e.tenant_id = $1
			AND e.status = ANY($2)
			AND e.entry_date <= $3
		GROUP BY a.account_id, a.code, a.name, a.account_type, a.nature
		ORDER BY string_to_array(a.code, '.')::int[];
	`

	rows, err := r.db(ctx).Query(ctx, query, tenantID, postedStatuses, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error querying trial balance data", err)
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TrialBalanceRow, error) {
		var tb domain.TrialBalanceRow
		var accountType, nature string
		err := row.Scan(
			&tb.AccountID,
			&tb.Code,
			&tb.AccountName,
			&accountType,
			&nature,
			&tb.Debit,
			&tb.Credit,
		)
		tb.AccountType = domain.AccountType(accountType)
		tb.Nature = domain.AccountNature(nature)
		return tb, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "error scanning trial balance row", err)
	}
	return result, nil
}
