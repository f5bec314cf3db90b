package services

import (
	"errors"

	"github.com/api-sage/binary-finance/src/internal/commons"
	"github.com/api-sage/binary-finance/src/internal/domain"
)

type userMessage struct {
	err   error
	title string
	text  string
}

// userMessages holds the message-box title and text for each failure.
var userMessages = []userMessage{
	{domain.ErrDuplicateUsername, "Registration Error", "Username already exists. Please choose a different username."},
	{domain.ErrInvalidUsername, "Registration Error", "Please enter a username."},
	{domain.ErrInvalidPassword, "Registration Error", "Please choose a password of at most 72 bytes."},
	{domain.ErrAccountNumbersExhausted, "Registration Error", "Unable to assign an account number. Please try again."},
	{domain.ErrInvalidCredentials, "Login Failed", "Invalid username or password."},
	{domain.ErrInvalidAmount, "Invalid Amount", "Please enter a valid positive amount."},
	{domain.ErrInsufficientFunds, "Insufficient Funds", "You have insufficient funds for this withdrawal."},
	{domain.ErrUnknownAccount, "Account Error", "No account found for this user."},
	{domain.ErrUnknownCurrency, "Currency Error", "Please choose one of USD, EUR, ZAR."},
	{domain.ErrNoHistory, "Transaction History", "No transaction history found for this user."},
}

func failureResponse[T any](err error) commons.Response[T] {
	for _, msg := range userMessages {
		if errors.Is(err, msg.err) {
			return commons.ErrorResponse[T](msg.title, msg.text)
		}
	}

	return commons.ErrorResponse[T]("Unexpected Error", "Unable to complete the request right now.")
}
