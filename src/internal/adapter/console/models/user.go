package models

import (
	"strings"

	"github.com/api-sage/binary-finance/src/internal/domain"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64,excludesall=/\\"`
	Password string `json:"password,omitempty"`
}

func (r RegisterRequest) Validate() error {
	normalized := RegisterRequest{
		Username: strings.TrimSpace(r.Username),
		Password: r.Password,
	}

	return validateStruct(normalized, nil, domain.ErrInvalidUsername)
}

type RegisterResponse struct {
	Username          string            `json:"username"`
	AccountNumber     string            `json:"accountNumber"`
	GeneratedPassword string            `json:"generatedPassword,omitempty"`
	Balances          []BalanceResponse `json:"balances"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) Validate() error {
	normalized := LoginRequest{
		Username: strings.TrimSpace(r.Username),
		Password: r.Password,
	}

	return validateStruct(normalized, nil, domain.ErrInvalidCredentials)
}

type LoginResponse struct {
	Username      string `json:"username"`
	AccountNumber string `json:"accountNumber"`
}
