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
	"github.com/SscSPs/general_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entryColumns = `entry_id, tenant_id, number, entry_date, period_id, description, reference,
	source_type, source_id, status, total_debit, total_credit, posted_by, posted_at,
	reversed_by_id, reversal_of_id, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, entry_id, line_number, account_id, description, debit, credit,
	cost_center_id, third_party_id, third_party_type`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and their lines.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// NextEntryNumber advances the tenant's counter. The upsert row-locks the sequence until the
// surrounding transaction ends, so concurrent creators of one tenant are serialized.
func (r *PgxJournalRepository) NextEntryNumber(ctx context.Context, tenantID string) (int64, error) {
	query := `
		INSERT INTO journal_entry_sequences (tenant_id, last_number)
		VALUES ($1, 1)
		ON CONFLICT (tenant_id) DO UPDATE
		SET last_number = journal_entry_sequences.last_number + 1
		RETURNING last_number;
	`
	var number int64
	if err := r.db(ctx).QueryRow(ctx, query, tenantID).Scan(&number); err != nil {
		return 0, apperrors.NewAppError(500, "failed to advance entry number", err)
	}
	return number, nil
}

// SaveEntry inserts the entry header and its lines atomically.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	return r.WithinTransaction(ctx, func(txCtx context.Context) error {
		m := mapping.ToModelJournalEntry(entry)
		headerQuery := `
			INSERT INTO journal_entries (` + entryColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
		`
		_, err := r.db(txCtx).Exec(txCtx, headerQuery,
			m.EntryID, m.TenantID, m.Number, m.EntryDate, m.PeriodID, m.Description, m.Reference,
			m.SourceType, m.SourceID, m.Status, m.TotalDebit, m.TotalCredit, m.PostedBy, m.PostedAt,
			m.ReversedByID, m.ReversalOfID, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return mapWriteError(err, fmt.Sprintf("save journal entry %d", entry.Number))
		}

		lineQuery := `INSERT INTO journal_lines (` + lineColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
		batch := &pgx.Batch{}
		for _, line := range entry.Lines {
			l := mapping.ToModelJournalLine(line)
			batch.Queue(lineQuery,
				l.LineID, l.EntryID, l.LineNumber, l.AccountID, l.Description, l.Debit, l.Credit,
				l.CostCenterID, l.ThirdPartyID, l.ThirdPartyType,
			)
		}
		results := r.db(txCtx).SendBatch(txCtx, batch)
		for _, line := range entry.Lines {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return mapWriteError(err, fmt.Sprintf("save journal line %d", line.LineNumber))
			}
		}
		if err := results.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to close journal line batch", err)
		}
		return nil
	})
}

func (r *PgxJournalRepository) findEntry(ctx context.Context, tenantID, entryID string, forUpdate bool) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE tenant_id = $1 AND entry_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	rows, err := r.db(ctx).Query(ctx, query, tenantID, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entry", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
		}
		return nil, apperrors.NewAppError(500, "failed to scan journal entry", err)
	}
	entry := mapping.ToDomainJournalEntry(m)

	rows, err = r.db(ctx).Query(ctx,
		`SELECT `+lineColumns+` FROM journal_lines WHERE entry_id = $1 ORDER BY line_number`, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal lines", err)
	}
	lines, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalLine])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan journal lines", err)
	}
	entry.Lines = make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		entry.Lines[i] = mapping.ToDomainJournalLine(l)
	}
	return &entry, nil
}

// FindEntryByID retrieves an entry of the tenant with its lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	return r.findEntry(ctx, tenantID, entryID, false)
}

// LockEntry retrieves an entry with SELECT ... FOR UPDATE. Only meaningful inside a transaction.
func (r *PgxJournalRepository) LockEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	return r.findEntry(ctx, tenantID, entryID, true)
}

// ListEntries retrieves entry headers ordered by (entry_date, number), keyset-paginated.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, tenantID string, filter domain.EntryFilter) ([]domain.JournalEntry, *string, error) {
	var cursorDate *time.Time
	var cursorNumber int64
	if filter.NextToken != nil && *filter.NextToken != "" {
		d, n, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursorDate, cursorNumber = &d, n
	}

	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE tenant_id = $1
			AND ($2::text = '' OR status = $2)
			AND ($3::text = '' OR source_type = $3)
			AND ($4::date IS NULL OR entry_date >= $4)
			AND ($5::date IS NULL OR entry_date <= $5)
			AND ($6::date IS NULL OR (entry_date, number) > ($6, $7))
		ORDER BY entry_date, number
		LIMIT $8;
	`
	rows, err := r.db(ctx).Query(ctx, query,
		tenantID,
		string(filter.Status),
		string(filter.SourceType),
		filter.DateFrom,
		filter.DateTo,
		cursorDate,
		cursorNumber,
		filter.Limit+1, // one extra row tells whether another page exists
	)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list journal entries", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan journal entries", err)
	}

	var next *string
	if len(ms) > filter.Limit {
		ms = ms[:filter.Limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(last.EntryDate, last.Number)
		next = &token
	}

	entries := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		entries[i] = mapping.ToDomainJournalEntry(m)
	}
	return entries, next, nil
}

// transition runs a status-guarded update and reports ErrInvalidState when the entry exists
// but was not in the expected status.
func (r *PgxJournalRepository) transition(ctx context.Context, tenantID, entryID string, from domain.EntryStatus, query string, args ...any) error {
	tag, err := r.db(ctx).Exec(ctx, query, args...)
	if err != nil {
		return mapWriteError(err, "update journal entry "+entryID)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	current, err := r.FindEntryByID(ctx, tenantID, entryID)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: entry %d is %s, expected %s", apperrors.ErrInvalidState, current.Number, current.Status, from)
}

// MarkPosted moves a DRAFT entry to POSTED.
func (r *PgxJournalRepository) MarkPosted(ctx context.Context, tenantID, entryID, postedBy string, postedAt time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = $3, posted_by = $4, posted_at = $5, last_updated_at = $5, last_updated_by = $4
		WHERE tenant_id = $1 AND entry_id = $2 AND status = $6;
	`
	return r.transition(ctx, tenantID, entryID, domain.Draft, query,
		tenantID, entryID, string(domain.Posted), postedBy, postedAt, string(domain.Draft))
}

// MarkReversed moves a POSTED entry to REVERSED and links both directions of the reversal.
func (r *PgxJournalRepository) MarkReversed(ctx context.Context, tenantID, entryID, reversalID, updatedBy string, updatedAt time.Time) error {
	return r.WithinTransaction(ctx, func(txCtx context.Context) error {
		query := `
			UPDATE journal_entries
			SET status = $3, reversed_by_id = $4, last_updated_at = $5, last_updated_by = $6
			WHERE tenant_id = $1 AND entry_id = $2 AND status = $7;
		`
		err := r.transition(txCtx, tenantID, entryID, domain.Posted, query,
			tenantID, entryID, string(domain.Reversed), reversalID, updatedAt, updatedBy, string(domain.Posted))
		if err != nil {
			return err
		}

		tag, err := r.db(txCtx).Exec(txCtx,
			`UPDATE journal_entries SET reversal_of_id = $3 WHERE tenant_id = $1 AND entry_id = $2;`,
			tenantID, reversalID, entryID)
		if err != nil {
			return mapWriteError(err, "link reversal entry "+reversalID)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: reversal entry %s", apperrors.ErrNotFound, reversalID)
		}
		return nil
	})
}

// DeleteDraft removes a DRAFT entry; its lines go with it through ON DELETE CASCADE.
func (r *PgxJournalRepository) DeleteDraft(ctx context.Context, tenantID, entryID string) error {
	return r.transition(ctx, tenantID, entryID, domain.Draft,
		`DELETE FROM journal_entries WHERE tenant_id = $1 AND entry_id = $2 AND status = $3;`,
		tenantID, entryID, string(domain.Draft))
}
