package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/api-sage/binary-finance/src/internal/usecase/services"
)

type userRepoStub struct {
	getByUsername func(ctx context.Context, username string) (domain.User, error)
}

func (s userRepoStub) Create(_ context.Context, user domain.User) (domain.User, error) {
	return user, nil
}

func (s userRepoStub) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return s.getByUsername(ctx, username)
}

func (s userRepoStub) ExistsByAccountNumber(context.Context, string) (bool, error) {
	return false, nil
}

func TestDirectoryServiceRegisterOpensBalancesAndLog(t *testing.T) {
	bank := newBankFixture(t, &sequenceGenerator{accountNumbers: []string{"123456"}})
	ctx := context.Background()

	registration, err := bank.directory.Register(ctx, "alice", "pw")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if registration.AccountNumber != "123456" {
		t.Fatalf("expected account 123456, got %q", registration.AccountNumber)
	}
	if registration.GeneratedPassword != "" {
		t.Fatalf("expected no generated password, got %q", registration.GeneratedPassword)
	}

	balances, err := bank.ledger.GetBalances(ctx, "123456")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(balances) != 3 {
		t.Fatalf("expected 3 balances, got %d", len(balances))
	}
	for _, balance := range balances {
		if !balance.Amount.IsZero() {
			t.Fatalf("expected zero %s balance, got %s", balance.Currency, balance.Amount)
		}
	}

	entries, err := bank.history.History(ctx, "alice")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty log, got %d entries", len(entries))
	}
}

func TestDirectoryServiceRegisterDuplicateLeavesStateUnchanged(t *testing.T) {
	bank := newBankFixture(t, &sequenceGenerator{accountNumbers: []string{"111111", "222222"}})
	ctx := context.Background()

	if _, err := bank.directory.Register(ctx, "alice", "pw"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	_, err := bank.directory.Register(ctx, "alice", "other")
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	accountNumber, err := bank.directory.Authenticate(ctx, "alice", "pw")
	if err != nil {
		t.Fatalf("expected original password to still work, got %v", err)
	}
	if accountNumber != "111111" {
		t.Fatalf("expected original account 111111, got %q", accountNumber)
	}

	taken, err := bank.state.Users.ExistsByAccountNumber(ctx, "222222")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if taken {
		t.Fatal("expected no account number to be allocated for the rejected registration")
	}
}

func TestDirectoryServiceRegisterGeneratesPassword(t *testing.T) {
	bank := newBankFixture(t, &sequenceGenerator{password: "Ab3$xY", accountNumbers: []string{"123456"}})
	ctx := context.Background()

	registration, err := bank.directory.Register(ctx, "bob", "")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if registration.GeneratedPassword != "Ab3$xY" {
		t.Fatalf("expected generated password, got %q", registration.GeneratedPassword)
	}

	if _, err := bank.directory.Authenticate(ctx, "bob", "Ab3$xY"); err != nil {
		t.Fatalf("expected generated password to authenticate, got %v", err)
	}
}

func TestDirectoryServiceRegisterRetriesAccountNumberCollision(t *testing.T) {
	generator := &sequenceGenerator{accountNumbers: []string{"111111"}}
	bank := newBankFixture(t, generator)
	ctx := context.Background()

	if _, err := bank.directory.Register(ctx, "alice", "pw"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	generator.accountNumbers = []string{"111111", "111111", "333333"}
	generator.next = 0

	registration, err := bank.directory.Register(ctx, "carol", "pw")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if registration.AccountNumber != "333333" {
		t.Fatalf("expected first free account number 333333, got %q", registration.AccountNumber)
	}
}

func TestDirectoryServiceRegisterGivesUpAfterRepeatedCollisions(t *testing.T) {
	bank := newBankFixture(t, &sequenceGenerator{accountNumbers: []string{"111111"}})
	ctx := context.Background()

	if _, err := bank.directory.Register(ctx, "alice", "pw"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	_, err := bank.directory.Register(ctx, "dave", "pw")
	if !errors.Is(err, domain.ErrAccountNumbersExhausted) {
		t.Fatalf("expected ErrAccountNumbersExhausted, got %v", err)
	}

	if _, err := bank.directory.AccountNumber(ctx, "dave"); !errors.Is(err, domain.ErrUnknownAccount) {
		t.Fatalf("expected dave to be absent, got %v", err)
	}
}

func TestDirectoryServiceAuthenticateFailures(t *testing.T) {
	bank := newBankFixture(t, &sequenceGenerator{accountNumbers: []string{"123456"}})
	ctx := context.Background()

	if _, err := bank.directory.Register(ctx, "alice", "pw"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if _, err := bank.directory.Authenticate(ctx, "alice", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := bank.directory.Authenticate(ctx, "nobody", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestDirectoryServiceRepositoryErrorsAreNotMasked(t *testing.T) {
	boom := errors.New("boom")
	passwords, _ := services.NewPasswordStorage("plain")
	svc := services.NewDirectoryService(
		userRepoStub{getByUsername: func(context.Context, string) (domain.User, error) {
			return domain.User{}, boom
		}},
		&sequenceGenerator{accountNumbers: []string{"123456"}},
		passwords,
		nil,
		nil,
	)

	if _, err := svc.Register(context.Background(), "alice", "pw"); !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "alice", "pw"); !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
	if _, err := svc.AccountNumber(context.Background(), "alice"); !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
