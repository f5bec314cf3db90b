package memory

import (
	"context"
	"testing"

	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateRepositoryTableIsComplete(t *testing.T) {
	rates, err := NewRateRepository().GetRates(context.Background())
	require.NoError(t, err)
	require.Len(t, rates, 9)

	for _, rate := range rates {
		assert.True(t, rate.Rate.IsPositive(), "%s->%s", rate.FromCurrency, rate.ToCurrency)
		if rate.FromCurrency == rate.ToCurrency {
			assert.True(t, rate.Rate.Equal(decimal.NewFromInt(1)))
		}
	}
}

func TestRateRepositoryGetRate(t *testing.T) {
	repo := NewRateRepository()

	rate, err := repo.GetRate(context.Background(), domain.ZAR, domain.EUR)
	require.NoError(t, err)
	assert.Equal(t, "1.14", rate.Rate.String())

	_, err = repo.GetRate(context.Background(), domain.USD, domain.Currency("GBP"))
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}
