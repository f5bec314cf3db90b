package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/api-sage/binary-finance/src/internal/logger"
	"github.com/api-sage/binary-finance/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.DirectoryService = (*DirectoryService)(nil)

const maxAccountNumberAttempts = 10

type ledgerOpener interface {
	Open(ctx context.Context, accountNumber string) error
}

type historyOpener interface {
	Open(ctx context.Context, username string, accountNumber string) error
}

type DirectoryService struct {
	userRepo  domain.UserRepository
	generator service_interfaces.CredentialGenerator
	passwords PasswordStorage
	ledger    ledgerOpener
	history   historyOpener
}

func NewDirectoryService(
	userRepo domain.UserRepository,
	generator service_interfaces.CredentialGenerator,
	passwords PasswordStorage,
	ledger ledgerOpener,
	history historyOpener,
) *DirectoryService {
	return &DirectoryService{
		userRepo:  userRepo,
		generator: generator,
		passwords: passwords,
		ledger:    ledger,
		history:   history,
	}
}

// Register creates the user, opens a zero balance in every currency and an
// empty transaction log. An empty password is replaced by a generated one,
// which is returned so the caller can show it.
func (s *DirectoryService) Register(ctx context.Context, username string, password string) (domain.Registration, error) {
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return domain.Registration{}, fmt.Errorf("register %q: %w", username, domain.ErrDuplicateUsername)
	} else if !errors.Is(err, domain.ErrRecordNotFound) {
		return domain.Registration{}, fmt.Errorf("register %q: lookup user: %w", username, err)
	}

	var generated string
	if password == "" {
		var err error
		generated, err = s.generator.GeneratePassword()
		if err != nil {
			return domain.Registration{}, fmt.Errorf("register %q: %w", username, err)
		}
		password = generated
	}

	accountNumber, err := s.allocateAccountNumber(ctx)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("register %q: %w", username, err)
	}

	secret, err := s.passwords.Seal(password)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("register %q: %w", username, err)
	}

	created, err := s.userRepo.Create(ctx, domain.User{
		Username:      username,
		Secret:        secret,
		AccountNumber: accountNumber,
	})
	if err != nil {
		return domain.Registration{}, err
	}

	if err := s.ledger.Open(ctx, created.AccountNumber); err != nil {
		return domain.Registration{}, fmt.Errorf("register %q: open ledger: %w", username, err)
	}
	if err := s.history.Open(ctx, created.Username, created.AccountNumber); err != nil {
		return domain.Registration{}, fmt.Errorf("register %q: open transaction log: %w", username, err)
	}

	logger.Info("directory service register success", logger.Fields{
		"username":          created.Username,
		"accountNumber":     created.AccountNumber,
		"passwordGenerated": generated != "",
	})

	return domain.Registration{
		Username:          created.Username,
		AccountNumber:     created.AccountNumber,
		GeneratedPassword: generated,
	}, nil
}

// Authenticate reports ErrInvalidCredentials for an unknown user and for a
// wrong password alike.
func (s *DirectoryService) Authenticate(ctx context.Context, username string, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("authenticate %q: %w", username, err)
	}

	ok, err := s.passwords.Matches(user.Secret, password)
	if err != nil {
		return "", fmt.Errorf("authenticate %q: %w", username, err)
	}
	if !ok {
		return "", domain.ErrInvalidCredentials
	}

	return user.AccountNumber, nil
}

func (s *DirectoryService) AccountNumber(ctx context.Context, username string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: no user %q", domain.ErrUnknownAccount, username)
		}
		return "", fmt.Errorf("account number for %q: %w", username, err)
	}

	return user.AccountNumber, nil
}

func (s *DirectoryService) allocateAccountNumber(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= maxAccountNumberAttempts; attempt++ {
		candidate, err := s.generator.GenerateAccountNumber()
		if err != nil {
			return "", err
		}

		taken, err := s.userRepo.ExistsByAccountNumber(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check account number: %w", err)
		}
		if !taken {
			return candidate, nil
		}

		logger.Warn("directory service account number collision", logger.Fields{
			"attempt": attempt,
		})
	}

	return "", domain.ErrAccountNumbersExhausted
}
