package models

import (
	"strings"

	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/shopspring/decimal"
)

var transactionFieldErrors = map[string]error{
	"username": domain.ErrUnknownAccount,
	"currency": domain.ErrUnknownCurrency,
	"amount":   domain.ErrInvalidAmount,
}

// TransactionRequest carries a deposit or withdrawal exactly as typed into the
// form. Amount stays a string so a non-numeric entry can be reported as an
// invalid amount.
type TransactionRequest struct {
	Username string `json:"username" validate:"required"`
	Currency string `json:"currency" validate:"required"`
	Amount   string `json:"amount" validate:"required"`
}

func (r TransactionRequest) Validate() error {
	_, _, err := r.Parse()
	return err
}

func (r TransactionRequest) Parse() (domain.Currency, decimal.Decimal, error) {
	normalized := TransactionRequest{
		Username: strings.TrimSpace(r.Username),
		Currency: strings.TrimSpace(r.Currency),
		Amount:   strings.TrimSpace(r.Amount),
	}
	if err := validateStruct(normalized, transactionFieldErrors, domain.ErrInvalidAmount); err != nil {
		return "", decimal.Decimal{}, err
	}

	currency, err := domain.ParseCurrency(normalized.Currency)
	if err != nil {
		return "", decimal.Decimal{}, err
	}

	amount, err := parsePositiveAmount(normalized.Amount)
	if err != nil {
		return "", decimal.Decimal{}, err
	}

	return currency, amount, nil
}

type TransactionResponse struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	AccountNumber string `json:"accountNumber"`
	Type          string `json:"type"`
	Currency      string `json:"currency"`
	Amount        string `json:"amount"`
	Balance       string `json:"balance"`
}
