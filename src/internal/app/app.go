package app

import (
	"fmt"
	"io"
	"os"

	"github.com/api-sage/binary-finance/src/internal/adapter/console/controller"
	"github.com/api-sage/binary-finance/src/internal/adapter/export"
	"github.com/api-sage/binary-finance/src/internal/adapter/repository/memory"
	"github.com/api-sage/binary-finance/src/internal/config"
	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/api-sage/binary-finance/src/internal/logger"
	"github.com/api-sage/binary-finance/src/internal/usecase/services"
)

type App struct {
	Config  config.Config
	State   *memory.BankState
	Session *services.SessionService
}

func New(cfg config.Config) (*App, error) {
	passwords, err := services.NewPasswordStorage(cfg.PasswordStorage)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		return nil, fmt.Errorf("prepare export directory: %w", err)
	}

	state := memory.NewBankState()
	ledger := services.NewLedgerService(state.Balances)
	history := services.NewTransactionLogService(state.Transactions)
	rates := services.NewRateService(state.Rates)
	directory := services.NewDirectoryService(state.Users, services.NewCredentialGenerator(), passwords, ledger, history)

	logger.Info("bank state ready", logger.Fields{
		"exportDir":       cfg.ExportDir,
		"passwordStorage": cfg.PasswordStorage,
		"displayCurrency": cfg.DisplayCurrency,
	})

	return &App{
		Config:  cfg,
		State:   state,
		Session: services.NewSessionService(directory, ledger, history, rates, export.NewCSVWriter(cfg.ExportDir)),
	}, nil
}

// Controller binds a terminal form to the session, starting in the configured
// display currency.
func (a *App) Controller(in io.Reader, out io.Writer, opts ...controller.Option) *controller.Controller {
	opts = append([]controller.Option{controller.WithDisplayCurrency(domain.Currency(a.Config.DisplayCurrency))}, opts...)
	return controller.New(a.Session, in, out, opts...)
}
