package domain

import (
	"fmt"
	"strings"
)

type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	ZAR Currency = "ZAR"
)

// SupportedCurrencies returns the fixed currency set in display order.
func SupportedCurrencies() []Currency {
	return []Currency{USD, EUR, ZAR}
}

func ParseCurrency(raw string) (Currency, error) {
	currency := Currency(strings.ToUpper(strings.TrimSpace(raw)))
	if !currency.IsSupported() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, raw)
	}

	return currency, nil
}

func (c Currency) IsSupported() bool {
	switch c {
	case USD, EUR, ZAR:
		return true
	default:
		return false
	}
}

func (c Currency) String() string {
	return string(c)
}
