package service_interfaces

import (
	"context"

	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/shopspring/decimal"
)

type TransactionLogService interface {
	Open(ctx context.Context, username string, accountNumber string) error
	Record(ctx context.Context, username string, txType domain.TransactionType, currency domain.Currency, amount decimal.Decimal, balanceAfter decimal.Decimal) (domain.Transaction, error)
	History(ctx context.Context, username string) ([]domain.Transaction, error)
	Export(ctx context.Context, username string) ([][]string, error)
}

type HistoryExporter interface {
	Write(username string, rows [][]string) (string, error)
}
