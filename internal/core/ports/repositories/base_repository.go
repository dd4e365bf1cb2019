package repositories

import (
	"context"
)

// TransactionManager runs units of work atomically.
// Repositories called with the ctx handed to fn participate in the same database transaction.
type TransactionManager interface {
	// WithinTransaction executes fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Nested calls join the outer transaction.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
