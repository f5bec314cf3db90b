package services_test

import (
	"errors"
	"testing"

	"github.com/api-sage/binary-finance/src/internal/adapter/export"
	"github.com/api-sage/binary-finance/src/internal/adapter/repository/memory"
	"github.com/api-sage/binary-finance/src/internal/usecase/service_interfaces"
	"github.com/api-sage/binary-finance/src/internal/usecase/services"
)

// sequenceGenerator hands out the queued account numbers in order and then
// keeps repeating the last one.
type sequenceGenerator struct {
	password       string
	accountNumbers []string
	next           int
	err            error
}

func (g *sequenceGenerator) GeneratePassword() (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.password, nil
}

func (g *sequenceGenerator) GenerateAccountNumber() (string, error) {
	if g.err != nil {
		return "", g.err
	}
	if len(g.accountNumbers) == 0 {
		return "", errors.New("no account numbers queued")
	}
	idx := g.next
	if idx >= len(g.accountNumbers) {
		idx = len(g.accountNumbers) - 1
	}
	g.next++
	return g.accountNumbers[idx], nil
}

type bankFixture struct {
	state     *memory.BankState
	directory *services.DirectoryService
	ledger    *services.LedgerService
	history   *services.TransactionLogService
	rates     *services.RateService
	session   *services.SessionService
	exportDir string
}

func newBankFixture(t *testing.T, generator service_interfaces.CredentialGenerator) bankFixture {
	t.Helper()
	return newBankFixtureWithStorage(t, generator, "plain")
}

func newBankFixtureWithStorage(t *testing.T, generator service_interfaces.CredentialGenerator, storage string) bankFixture {
	t.Helper()

	passwords, err := services.NewPasswordStorage(storage)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	state := memory.NewBankState()
	ledger := services.NewLedgerService(state.Balances)
	history := services.NewTransactionLogService(state.Transactions)
	rates := services.NewRateService(state.Rates)
	directory := services.NewDirectoryService(state.Users, generator, passwords, ledger, history)
	exportDir := t.TempDir()

	return bankFixture{
		state:     state,
		directory: directory,
		ledger:    ledger,
		history:   history,
		rates:     rates,
		session:   services.NewSessionService(directory, ledger, history, rates, export.NewCSVWriter(exportDir)),
		exportDir: exportDir,
	}
}
