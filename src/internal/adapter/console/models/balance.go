package models

import (
	"strings"

	"github.com/api-sage/binary-finance/src/internal/domain"
)

var balanceFieldErrors = map[string]error{
	"username": domain.ErrUnknownAccount,
	"currency": domain.ErrUnknownCurrency,
}

type BalanceRequest struct {
	Username string `json:"username" validate:"required"`
	Currency string `json:"currency" validate:"required"`
}

func (r BalanceRequest) Parse() (domain.Currency, error) {
	normalized := BalanceRequest{
		Username: strings.TrimSpace(r.Username),
		Currency: strings.TrimSpace(r.Currency),
	}
	if err := validateStruct(normalized, balanceFieldErrors, domain.ErrUnknownAccount); err != nil {
		return "", err
	}

	return domain.ParseCurrency(normalized.Currency)
}

type BalanceResponse struct {
	Currency string `json:"currency"`
	Balance  string `json:"balance"`
}
