package services

import "context"

// noTransactions runs work directly. Used when a service is built without a transaction manager.
type noTransactions struct{}

func (noTransactions) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
