package services

import (
	"context"
	"fmt"

	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/api-sage/binary-finance/src/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

var _ service_interfaces.LedgerService = (*LedgerService)(nil)

// LedgerService tracks each currency independently: a withdrawal only ever
// draws on the balance of the currency it names.
type LedgerService struct {
	balanceRepo domain.BalanceRepository
}

func NewLedgerService(balanceRepo domain.BalanceRepository) *LedgerService {
	return &LedgerService{balanceRepo: balanceRepo}
}

func (s *LedgerService) Open(ctx context.Context, accountNumber string) error {
	return s.balanceRepo.Open(ctx, accountNumber, domain.SupportedCurrencies())
}

func (s *LedgerService) Deposit(ctx context.Context, accountNumber string, currency domain.Currency, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := checkMovement(currency, amount); err != nil {
		return decimal.Decimal{}, err
	}

	return s.balanceRepo.Credit(ctx, accountNumber, currency, amount)
}

func (s *LedgerService) Withdraw(ctx context.Context, accountNumber string, currency domain.Currency, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := checkMovement(currency, amount); err != nil {
		return decimal.Decimal{}, err
	}

	return s.balanceRepo.Debit(ctx, accountNumber, currency, amount)
}

func (s *LedgerService) GetBalance(ctx context.Context, accountNumber string, currency domain.Currency) (decimal.Decimal, error) {
	if !currency.IsSupported() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, currency)
	}

	return s.balanceRepo.Get(ctx, accountNumber, currency)
}

func (s *LedgerService) GetBalances(ctx context.Context, accountNumber string) ([]domain.Balance, error) {
	return s.balanceRepo.GetAll(ctx, accountNumber)
}

func checkMovement(currency domain.Currency, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", domain.ErrInvalidAmount, amount)
	}
	if !currency.IsSupported() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, currency)
	}

	return nil
}
