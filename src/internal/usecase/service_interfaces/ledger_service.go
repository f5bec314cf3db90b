package service_interfaces

import (
	"context"

	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/shopspring/decimal"
)

type LedgerService interface {
	Open(ctx context.Context, accountNumber string) error
	Deposit(ctx context.Context, accountNumber string, currency domain.Currency, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, accountNumber string, currency domain.Currency, amount decimal.Decimal) (decimal.Decimal, error)
	GetBalance(ctx context.Context, accountNumber string, currency domain.Currency) (decimal.Decimal, error)
	GetBalances(ctx context.Context, accountNumber string) ([]domain.Balance, error)
}
