package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/api-sage/binary-finance/src/internal/adapter/console/models"
	"github.com/api-sage/binary-finance/src/internal/commons"
	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/api-sage/binary-finance/src/internal/logger"
	"github.com/api-sage/binary-finance/src/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

// Verify that RateService implements the service_interfaces.RateService interface
var _ service_interfaces.RateService = (*RateService)(nil)

type RateService struct {
	rateRepo domain.RateRepository
}

func NewRateService(rateRepo domain.RateRepository) *RateService {
	return &RateService{rateRepo: rateRepo}
}

func (s *RateService) GetRates(ctx context.Context) (commons.Response[[]models.RateResponse], error) {
	logger.Info("rate service get rates request", nil)

	rates, err := s.rateRepo.GetRates(ctx)
	if err != nil {
		logger.Error("rate service get rates failed", err, nil)
		return failureResponse[[]models.RateResponse](err), err
	}

	resp := make([]models.RateResponse, 0, len(rates))
	for _, rate := range rates {
		resp = append(resp, mapRateToResponse(rate))
	}

	logger.Info("rate service get rates success", logger.Fields{
		"count": len(resp),
	})

	return commons.SuccessResponse("Exchange Rates", resp), nil
}

func (s *RateService) GetRate(ctx context.Context, req models.GetRateRequest) (commons.Response[models.RateResponse], error) {
	logger.Info("rate service get rate request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	fromCurrency, toCurrency, err := req.Parse()
	if err != nil {
		logger.Error("rate service get rate validation failed", err, nil)
		return failureResponse[models.RateResponse](err), err
	}

	if fromCurrency == toCurrency {
		rate := domain.Rate{FromCurrency: fromCurrency, ToCurrency: toCurrency, Rate: decimal.NewFromInt(1)}
		return commons.SuccessResponse("Exchange Rate", mapRateToResponse(rate)), nil
	}

	rate, err := s.lookup(ctx, fromCurrency, toCurrency)
	if err != nil {
		logger.Error("rate service get rate failed", err, logger.Fields{
			"fromCurrency": fromCurrency,
			"toCurrency":   toCurrency,
		})
		return failureResponse[models.RateResponse](err), err
	}

	logger.Info("rate service get rate success", logger.Fields{
		"fromCurrency": rate.FromCurrency,
		"toCurrency":   rate.ToCurrency,
		"rate":         rate.Rate,
	})

	return commons.SuccessResponse("Exchange Rate", mapRateToResponse(rate)), nil
}

// ConvertRate returns the converted amount and the multiplier used. Zero is a
// valid amount; conversion within one currency is the identity.
func (s *RateService) ConvertRate(ctx context.Context, amount decimal.Decimal, fromCcy domain.Currency, toCcy domain.Currency) (decimal.Decimal, decimal.Decimal, error) {
	if !fromCcy.IsSupported() {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, fromCcy)
	}
	if !toCcy.IsSupported() {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, toCcy)
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("%w: amount cannot be negative", domain.ErrInvalidAmount)
	}
	if fromCcy == toCcy {
		return amount, decimal.NewFromInt(1), nil
	}

	rate, err := s.lookup(ctx, fromCcy, toCcy)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}

	return amount.Mul(rate.Rate), rate.Rate, nil
}

func (s *RateService) lookup(ctx context.Context, fromCcy domain.Currency, toCcy domain.Currency) (domain.Rate, error) {
	rate, err := s.rateRepo.GetRate(ctx, fromCcy, toCcy)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.Rate{}, fmt.Errorf("%w: no rate for %s to %s", domain.ErrUnknownCurrency, fromCcy, toCcy)
		}
		return domain.Rate{}, fmt.Errorf("get rate %s to %s: %w", fromCcy, toCcy, err)
	}

	return rate, nil
}

func mapRateToResponse(rate domain.Rate) models.RateResponse {
	return models.RateResponse{
		FromCurrency: rate.FromCurrency.String(),
		ToCurrency:   rate.ToCurrency.String(),
		Rate:         rate.Rate.String(),
	}
}
