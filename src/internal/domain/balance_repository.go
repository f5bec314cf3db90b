package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// BalanceRepository keeps one balance per supported currency for every
// opened account number.
type BalanceRepository interface {
	Open(ctx context.Context, accountNumber string, currencies []Currency) error
	Get(ctx context.Context, accountNumber string, currency Currency) (decimal.Decimal, error)
	GetAll(ctx context.Context, accountNumber string) ([]Balance, error)
	Credit(ctx context.Context, accountNumber string, currency Currency, amount decimal.Decimal) (decimal.Decimal, error)
	Debit(ctx context.Context, accountNumber string, currency Currency, amount decimal.Decimal) (decimal.Decimal, error)
}
