package domain

import "errors"

var ErrRecordNotFound = errors.New("record not found")

var (
	ErrDuplicateUsername       = errors.New("username already exists")
	ErrInvalidUsername         = errors.New("username is required")
	ErrInvalidPassword         = errors.New("password is too long")
	ErrInvalidCredentials      = errors.New("invalid username or password")
	ErrInvalidAmount           = errors.New("amount must be a positive number")
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrUnknownAccount          = errors.New("unknown account")
	ErrUnknownCurrency         = errors.New("unknown currency")
	ErrNoHistory               = errors.New("no transaction history")
	ErrAccountNumbersExhausted = errors.New("no free account number")
)
