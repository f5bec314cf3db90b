package services

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/api-sage/binary-finance/src/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// PasswordStorage decides how a password is kept in the directory. The plain
// form compares as typed; bcrypt only changes what is stored.
type PasswordStorage interface {
	Seal(password string) (string, error)
	Matches(secret string, password string) (bool, error)
}

func NewPasswordStorage(mode string) (PasswordStorage, error) {
	switch mode {
	case "", "plain":
		return plainPasswords{}, nil
	case "bcrypt":
		return bcryptPasswords{cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unsupported password storage %q", mode)
	}
}

type plainPasswords struct{}

func (plainPasswords) Seal(password string) (string, error) {
	return password, nil
}

func (plainPasswords) Matches(secret string, password string) (bool, error) {
	return secureEqual(secret, password), nil
}

type bcryptPasswords struct {
	cost int
}

// maxBcryptPasswordBytes is the most bcrypt will hash.
const maxBcryptPasswordBytes = 72

func (p bcryptPasswords) Seal(password string) (string, error) {
	if len(password) > maxBcryptPasswordBytes {
		return "", fmt.Errorf("%w: %d bytes, bcrypt allows %d", domain.ErrInvalidPassword, len(password), maxBcryptPasswordBytes)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hashed), nil
}

func (bcryptPasswords) Matches(secret string, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(secret), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("compare password: %w", err)
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
