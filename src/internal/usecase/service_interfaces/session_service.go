package service_interfaces

import (
	"context"

	"github.com/api-sage/binary-finance/src/internal/adapter/console/models"
	"github.com/api-sage/binary-finance/src/internal/commons"
)

type SessionService interface {
	Register(ctx context.Context, req models.RegisterRequest) (commons.Response[models.RegisterResponse], error)
	Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error)
	Deposit(ctx context.Context, req models.TransactionRequest) (commons.Response[models.TransactionResponse], error)
	Withdraw(ctx context.Context, req models.TransactionRequest) (commons.Response[models.TransactionResponse], error)
	GetBalance(ctx context.Context, req models.BalanceRequest) (commons.Response[models.BalanceResponse], error)
	GetRates(ctx context.Context) (commons.Response[[]models.RateResponse], error)
	ConvertAmount(ctx context.Context, req models.ConvertRequest) (commons.Response[models.ConvertResponse], error)
	ExportHistory(ctx context.Context, req models.ExportHistoryRequest) (commons.Response[models.ExportHistoryResponse], error)
}
