package repositories

import (
	"context"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account of the tenant by its unique identifier.
	FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account of the tenant by its plan code.
	FindAccountByCode(ctx context.Context, tenantID, code string) (*domain.Account, error)

	// FindAccountsByIDs retrieves the accounts of the tenant among accountIDs, keyed by id.
	// Ids that do not resolve are simply absent from the result.
	FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error)

	// FindAccountsByCodes retrieves the accounts of the tenant among codes, keyed by code.
	FindAccountsByCodes(ctx context.Context, tenantID string, codes []string) (map[string]domain.Account, error)

	// ListAccounts returns the full chart of accounts of a tenant ordered by code.
	ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error)

	// CountSystemAccounts returns how many seeded accounts the tenant has.
	CountSystemAccounts(ctx context.Context, tenantID string) (int, error)

	// CountChildren returns how many accounts name accountID as their parent.
	CountChildren(ctx context.Context, tenantID, accountID string) (int, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. Returns ErrDuplicate if the code is taken.
	SaveAccount(ctx context.Context, account domain.Account) error

	// SaveAccounts persists accounts in order within one transaction.
	SaveAccounts(ctx context.Context, accounts []domain.Account) error

	// UpdateAccount writes the mutable fields of an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
