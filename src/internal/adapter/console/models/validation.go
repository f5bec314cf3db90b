package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags and wraps the failure in the domain error
// registered for the first failing field, or fallback when none is.
func validateStruct(req any, byField map[string]error, fallback error) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", fallback, err)
	}

	target, ok := byField[fieldErrs[0].Field()]
	if !ok {
		target = fallback
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		msgs = append(msgs, describe(fieldErr))
	}

	return fmt.Errorf("%w: %s", target, strings.Join(msgs, "; "))
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "max":
		return fieldErr.Field() + " must be at most " + fieldErr.Param() + " characters"
	case "excludesall":
		return fieldErr.Field() + " contains characters that are not allowed"
	default:
		return fieldErr.Field() + " is invalid"
	}
}

const (
	amountScale       = 2
	maxAmountExponent = 18
)

var maxAmount = decimal.New(1, 15)

// parseAmount accepts at most two decimal places and magnitudes below 10^15.
// The exponent is bounded before any arithmetic so inputs such as 1e-10000000
// are rejected without expanding them.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidAmount, raw)
	}

	exp := amount.Exponent()
	if exp < -maxAmountExponent || exp > maxAmountExponent {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is out of range", domain.ErrInvalidAmount, raw)
	}
	if !amount.Equal(amount.Round(amountScale)) {
		return decimal.Decimal{}, fmt.Errorf("%w: %q has more than %d decimal places", domain.ErrInvalidAmount, raw, amountScale)
	}
	if amount.Abs().GreaterThanOrEqual(maxAmount) {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is too large", domain.ErrInvalidAmount, raw)
	}

	return amount, nil
}

func parsePositiveAmount(raw string) (decimal.Decimal, error) {
	amount, err := parseAmount(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidAmount)
	}

	return amount, nil
}
