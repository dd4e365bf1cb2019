package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/general_ledger/internal/models"
	"github.com/SscSPs/general_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, tenant_id, code, name, description, account_type, nature, level,
	parent_account_id, accepts_entries, is_system, is_active, tax_code,
	created_at, created_by, last_updated_at, last_updated_by`

const insertAccountQuery = `
	INSERT INTO accounts (` + accountColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func accountInsertArgs(a domain.Account) []any {
	m := mapping.ToModelAccount(a)
	return []any{
		m.AccountID, m.TenantID, m.Code, m.Name, m.Description, m.AccountType, m.Nature, m.Level,
		m.ParentAccountID, m.AcceptsEntries, m.IsSystem, m.IsActive, m.TaxCode,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	if _, err := r.db(ctx).Exec(ctx, insertAccountQuery, accountInsertArgs(account)...); err != nil {
		return mapWriteError(err, fmt.Sprintf("save account %s", account.Code))
	}
	return nil
}

// SaveAccounts inserts accounts in slice order as one batch. Parents must precede children.
func (r *PgxAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}
	return r.WithinTransaction(ctx, func(txCtx context.Context) error {
		batch := &pgx.Batch{}
		for _, a := range accounts {
			batch.Queue(insertAccountQuery, accountInsertArgs(a)...)
		}
		results := r.db(txCtx).SendBatch(txCtx, batch)
		for _, a := range accounts {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return mapWriteError(err, fmt.Sprintf("save account %s", a.Code))
			}
		}
		if err := results.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to close account batch", err)
		}
		return nil
	})
}

// UpdateAccount writes the mutable fields of an account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $3, description = $4, accepts_entries = $5, is_active = $6, tax_code = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE tenant_id = $1 AND account_id = $2;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		account.TenantID,
		account.AccountID,
		account.Name,
		account.Description,
		account.AcceptsEntries,
		account.IsActive,
		account.TaxCode,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("update account %s", account.AccountID))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account " + account.AccountID)
	}
	return nil
}

func (r *PgxAccountRepository) findOne(ctx context.Context, where string, args ...any) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + where
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan account", err)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

func (r *PgxAccountRepository) findMany(ctx context.Context, where string, args ...any) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + where
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan accounts", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// FindAccountByID retrieves an account of the tenant by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	acc, err := r.findOne(ctx, `tenant_id = $1 AND account_id = $2`, tenantID, accountID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return acc, err
}

// FindAccountByCode retrieves an account of the tenant by its plan code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, tenantID, code string) (*domain.Account, error) {
	acc, err := r.findOne(ctx, `tenant_id = $1 AND code = $2`, tenantID, code)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%w: account code %s", apperrors.ErrNotFound, code)
	}
	return acc, err
}

// FindAccountsByIDs retrieves multiple accounts of the tenant by their IDs.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}
	accounts, err := r.findMany(ctx, `tenant_id = $1 AND account_id = ANY($2)`, tenantID, accountIDs)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		result[a.AccountID] = a
	}
	return result, nil
}

// FindAccountsByCodes retrieves multiple accounts of the tenant by their codes.
func (r *PgxAccountRepository) FindAccountsByCodes(ctx context.Context, tenantID string, codes []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(codes))
	if len(codes) == 0 {
		return result, nil
	}
	accounts, err := r.findMany(ctx, `tenant_id = $1 AND code = ANY($2)`, tenantID, codes)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		result[a.Code] = a
	}
	return result, nil
}

// ListAccounts returns the tenant's chart. Codes are all digits and dots, so the
// integer-array cast orders 1.9 before 1.10.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error) {
	return r.findMany(ctx, `tenant_id = $1 ORDER BY string_to_array(code, '.')::int[]`, tenantID)
}

// CountSystemAccounts returns how many seeded accounts the tenant has.
func (r *PgxAccountRepository) CountSystemAccounts(ctx context.Context, tenantID string) (int, error) {
	var n int
	err := r.db(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM accounts WHERE tenant_id = $1 AND is_system`, tenantID).Scan(&n)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count system accounts", err)
	}
	return n, nil
}

// CountChildren returns how many accounts have accountID as parent.
func (r *PgxAccountRepository) CountChildren(ctx context.Context, tenantID, accountID string) (int, error) {
	var n int
	err := r.db(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM accounts WHERE tenant_id = $1 AND parent_account_id = $2`,
		tenantID, accountID,
	).Scan(&n)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count child accounts", err)
	}
	return n, nil
}
