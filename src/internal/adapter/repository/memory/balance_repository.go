package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/api-sage/binary-finance/src/internal/logger"
	"github.com/shopspring/decimal"
)

// BalanceRepository keys per-currency balances by account number. The
// sufficiency check and the debit happen under the same lock, so a balance
// never drops below zero.
type BalanceRepository struct {
	mu       sync.RWMutex
	accounts map[string]map[domain.Currency]decimal.Decimal
}

func NewBalanceRepository() *BalanceRepository {
	return &BalanceRepository{accounts: make(map[string]map[domain.Currency]decimal.Decimal)}
}

func (r *BalanceRepository) Open(_ context.Context, accountNumber string, currencies []domain.Currency) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[accountNumber]; exists {
		return fmt.Errorf("open balances for account %s: already open", accountNumber)
	}

	balances := make(map[domain.Currency]decimal.Decimal, len(currencies))
	for _, currency := range currencies {
		balances[currency] = decimal.Zero
	}
	r.accounts[accountNumber] = balances

	return nil
}

func (r *BalanceRepository) Get(_ context.Context, accountNumber string, currency domain.Currency) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	balances, err := r.balances(accountNumber)
	if err != nil {
		return decimal.Decimal{}, err
	}

	balance, ok := balances[currency]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", domain.ErrUnknownCurrency, currency)
	}

	return balance, nil
}

func (r *BalanceRepository) GetAll(_ context.Context, accountNumber string) ([]domain.Balance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	balances, err := r.balances(accountNumber)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Balance, 0, len(balances))
	for _, currency := range domain.SupportedCurrencies() {
		if amount, ok := balances[currency]; ok {
			out = append(out, domain.Balance{Currency: currency, Amount: amount})
		}
	}

	return out, nil
}

func (r *BalanceRepository) Credit(_ context.Context, accountNumber string, currency domain.Currency, amount decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	balances, err := r.balances(accountNumber)
	if err != nil {
		return decimal.Decimal{}, err
	}

	current, ok := balances[currency]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", domain.ErrUnknownCurrency, currency)
	}

	updated := current.Add(amount)
	balances[currency] = updated

	logger.Debug("balance repository credit success", logger.Fields{
		"accountNumber": accountNumber,
		"currency":      currency,
		"balance":       updated,
	})

	return updated, nil
}

func (r *BalanceRepository) Debit(_ context.Context, accountNumber string, currency domain.Currency, amount decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	balances, err := r.balances(accountNumber)
	if err != nil {
		return decimal.Decimal{}, err
	}

	current, ok := balances[currency]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", domain.ErrUnknownCurrency, currency)
	}

	if amount.GreaterThan(current) {
		return current, fmt.Errorf("debit %s %s from account %s: %w", amount, currency, accountNumber, domain.ErrInsufficientFunds)
	}

	updated := current.Sub(amount)
	balances[currency] = updated

	logger.Debug("balance repository debit success", logger.Fields{
		"accountNumber": accountNumber,
		"currency":      currency,
		"balance":       updated,
	})

	return updated, nil
}

// balances must be called with r.mu held.
func (r *BalanceRepository) balances(accountNumber string) (map[domain.Currency]decimal.Decimal, error) {
	balances, ok := r.accounts[accountNumber]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAccount, accountNumber)
	}

	return balances, nil
}
