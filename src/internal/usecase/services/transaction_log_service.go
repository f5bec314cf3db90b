package services

import (
	"context"
	"fmt"

	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/api-sage/binary-finance/src/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

var _ service_interfaces.TransactionLogService = (*TransactionLogService)(nil)

var exportHeader = []string{"User Name", "Account Number", "Type", "Currency", "Amount", "Balance"}

type TransactionLogService struct {
	transactionRepo domain.TransactionRepository
}

func NewTransactionLogService(transactionRepo domain.TransactionRepository) *TransactionLogService {
	return &TransactionLogService{transactionRepo: transactionRepo}
}

func (s *TransactionLogService) Open(ctx context.Context, username string, accountNumber string) error {
	return s.transactionRepo.Open(ctx, username, accountNumber)
}

func (s *TransactionLogService) Record(
	ctx context.Context,
	username string,
	txType domain.TransactionType,
	currency domain.Currency,
	amount decimal.Decimal,
	balanceAfter decimal.Decimal,
) (domain.Transaction, error) {
	if !amount.IsPositive() {
		return domain.Transaction{}, fmt.Errorf("record %s for %q: %w", txType, username, domain.ErrInvalidAmount)
	}

	return s.transactionRepo.Append(ctx, domain.Transaction{
		Username:     username,
		Type:         txType,
		Currency:     currency,
		Amount:       amount,
		BalanceAfter: balanceAfter,
	})
}

func (s *TransactionLogService) History(ctx context.Context, username string) ([]domain.Transaction, error) {
	return s.transactionRepo.ListByUsername(ctx, username)
}

// Export lays the log out as CSV rows: the header, a row naming the user and
// account with the transaction columns blank, then one row per transaction in
// the order they happened. A log with no transactions is ErrNoHistory.
func (s *TransactionLogService) Export(ctx context.Context, username string) ([][]string, error) {
	entries, err := s.transactionRepo.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("export %q: %w", username, domain.ErrNoHistory)
	}

	accountNumber := entries[0].AccountNumber
	rows := make([][]string, 0, len(entries)+2)
	rows = append(rows, append([]string(nil), exportHeader...))
	rows = append(rows, []string{username, accountNumber, "", "", "", ""})
	for _, entry := range entries {
		rows = append(rows, []string{
			username,
			accountNumber,
			string(entry.Type),
			entry.Currency.String(),
			entry.Amount.String(),
			entry.BalanceAfter.StringFixed(2),
		})
	}

	return rows, nil
}
