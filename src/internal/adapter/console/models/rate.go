package models

import (
	"strings"

	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/shopspring/decimal"
)

type RateResponse struct {
	FromCurrency string `json:"fromCurrency"`
	ToCurrency   string `json:"toCurrency"`
	Rate         string `json:"rate"`
}

type GetRateRequest struct {
	FromCurrency string `json:"fromCurrency" validate:"required"`
	ToCurrency   string `json:"toCurrency" validate:"required"`
}

func (r GetRateRequest) Parse() (domain.Currency, domain.Currency, error) {
	normalized := GetRateRequest{
		FromCurrency: strings.TrimSpace(r.FromCurrency),
		ToCurrency:   strings.TrimSpace(r.ToCurrency),
	}
	if err := validateStruct(normalized, nil, domain.ErrUnknownCurrency); err != nil {
		return "", "", err
	}

	from, err := domain.ParseCurrency(normalized.FromCurrency)
	if err != nil {
		return "", "", err
	}
	to, err := domain.ParseCurrency(normalized.ToCurrency)
	if err != nil {
		return "", "", err
	}

	return from, to, nil
}

type ConvertRequest struct {
	Amount       string `json:"amount" validate:"required"`
	FromCurrency string `json:"fromCurrency" validate:"required"`
	ToCurrency   string `json:"toCurrency" validate:"required"`
}

// Parse accepts zero; only negative or non-numeric amounts are rejected.
func (r ConvertRequest) Parse() (decimal.Decimal, domain.Currency, domain.Currency, error) {
	normalized := ConvertRequest{
		Amount:       strings.TrimSpace(r.Amount),
		FromCurrency: strings.TrimSpace(r.FromCurrency),
		ToCurrency:   strings.TrimSpace(r.ToCurrency),
	}
	byField := map[string]error{"amount": domain.ErrInvalidAmount}
	if err := validateStruct(normalized, byField, domain.ErrUnknownCurrency); err != nil {
		return decimal.Decimal{}, "", "", err
	}

	amount, err := parseAmount(normalized.Amount)
	if err != nil {
		return decimal.Decimal{}, "", "", err
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, "", "", domain.ErrInvalidAmount
	}

	from, to, err := GetRateRequest{FromCurrency: normalized.FromCurrency, ToCurrency: normalized.ToCurrency}.Parse()
	if err != nil {
		return decimal.Decimal{}, "", "", err
	}

	return amount, from, to, nil
}

type ConvertResponse struct {
	Amount          string `json:"amount"`
	FromCurrency    string `json:"fromCurrency"`
	ToCurrency      string `json:"toCurrency"`
	ConvertedAmount string `json:"convertedAmount"`
	RateUsed        string `json:"rateUsed"`
}
