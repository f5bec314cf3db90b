package domain

import "context"

type TransactionRepository interface {
	Open(ctx context.Context, username string, accountNumber string) error
	Append(ctx context.Context, entry Transaction) (Transaction, error)
	ListByUsername(ctx context.Context, username string) ([]Transaction, error)
}
