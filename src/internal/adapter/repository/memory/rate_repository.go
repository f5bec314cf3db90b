package memory

import (
	"context"

	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/shopspring/decimal"
)

type ratePair struct {
	from domain.Currency
	to   domain.Currency
}

// RateRepository serves the fixed demo rate table. Same-currency pairs are 1.
type RateRepository struct {
	rates map[ratePair]decimal.Decimal
}

func NewRateRepository() *RateRepository {
	return &RateRepository{
		rates: map[ratePair]decimal.Decimal{
			{domain.USD, domain.USD}: decimal.NewFromInt(1),
			{domain.USD, domain.EUR}: decimal.RequireFromString("0.85"),
			{domain.USD, domain.ZAR}: decimal.RequireFromString("0.75"),
			{domain.EUR, domain.USD}: decimal.RequireFromString("1.18"),
			{domain.EUR, domain.EUR}: decimal.NewFromInt(1),
			{domain.EUR, domain.ZAR}: decimal.RequireFromString("0.88"),
			{domain.ZAR, domain.USD}: decimal.RequireFromString("1.33"),
			{domain.ZAR, domain.EUR}: decimal.RequireFromString("1.14"),
			{domain.ZAR, domain.ZAR}: decimal.NewFromInt(1),
		},
	}
}

func (r *RateRepository) GetRates(_ context.Context) ([]domain.Rate, error) {
	currencies := domain.SupportedCurrencies()
	rates := make([]domain.Rate, 0, len(currencies)*len(currencies))
	for _, from := range currencies {
		for _, to := range currencies {
			rates = append(rates, domain.Rate{
				FromCurrency: from,
				ToCurrency:   to,
				Rate:         r.rates[ratePair{from, to}],
			})
		}
	}

	return rates, nil
}

func (r *RateRepository) GetRate(_ context.Context, fromCurrency domain.Currency, toCurrency domain.Currency) (domain.Rate, error) {
	rate, ok := r.rates[ratePair{fromCurrency, toCurrency}]
	if !ok {
		return domain.Rate{}, domain.ErrRecordNotFound
	}

	return domain.Rate{FromCurrency: fromCurrency, ToCurrency: toCurrency, Rate: rate}, nil
}
