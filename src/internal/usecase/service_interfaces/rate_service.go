package service_interfaces

import (
	"context"

	"github.com/api-sage/binary-finance/src/internal/adapter/console/models"
	"github.com/api-sage/binary-finance/src/internal/commons"
	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/shopspring/decimal"
)

type RateService interface {
	GetRates(ctx context.Context) (commons.Response[[]models.RateResponse], error)
	GetRate(ctx context.Context, req models.GetRateRequest) (commons.Response[models.RateResponse], error)
	ConvertRate(ctx context.Context, amount decimal.Decimal, fromCcy domain.Currency, toCcy domain.Currency) (decimal.Decimal, decimal.Decimal, error)
}
