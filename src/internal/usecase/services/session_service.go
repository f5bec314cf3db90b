package services

import (
	"context"
	"strings"

	"github.com/api-sage/binary-finance/src/internal/adapter/console/models"
	"github.com/api-sage/binary-finance/src/internal/commons"
	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/api-sage/binary-finance/src/internal/logger"
	"github.com/api-sage/binary-finance/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.SessionService = (*SessionService)(nil)

// SessionService is the only surface the form talks to. It holds no state of
// its own; every call goes straight to the directory, ledger, log or rates.
type SessionService struct {
	directory service_interfaces.DirectoryService
	ledger    service_interfaces.LedgerService
	history   service_interfaces.TransactionLogService
	rates     service_interfaces.RateService
	exporter  service_interfaces.HistoryExporter
}

func NewSessionService(
	directory service_interfaces.DirectoryService,
	ledger service_interfaces.LedgerService,
	history service_interfaces.TransactionLogService,
	rates service_interfaces.RateService,
	exporter service_interfaces.HistoryExporter,
) *SessionService {
	return &SessionService{
		directory: directory,
		ledger:    ledger,
		history:   history,
		rates:     rates,
		exporter:  exporter,
	}
}

func (s *SessionService) Register(ctx context.Context, req models.RegisterRequest) (commons.Response[models.RegisterResponse], error) {
	logger.Info("session service register request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("session service register validation failed", err, nil)
		return failureResponse[models.RegisterResponse](err), err
	}

	registration, err := s.directory.Register(ctx, strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		logger.Error("session service register failed", err, logger.Fields{
			"username": req.Username,
		})
		return failureResponse[models.RegisterResponse](err), err
	}

	balances, err := s.ledger.GetBalances(ctx, registration.AccountNumber)
	if err != nil {
		logger.Error("session service register balances failed", err, logger.Fields{
			"accountNumber": registration.AccountNumber,
		})
		return failureResponse[models.RegisterResponse](err), err
	}

	response := models.RegisterResponse{
		Username:          registration.Username,
		AccountNumber:     registration.AccountNumber,
		GeneratedPassword: registration.GeneratedPassword,
		Balances:          mapBalancesToResponse(balances),
	}

	logger.Info("session service register success", logger.Fields{
		"username":      response.Username,
		"accountNumber": response.AccountNumber,
	})

	return commons.SuccessResponse("Registration", response), nil
}

func (s *SessionService) Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error) {
	logger.Info("session service login request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("session service login validation failed", err, nil)
		return failureResponse[models.LoginResponse](err), err
	}

	username := strings.TrimSpace(req.Username)
	accountNumber, err := s.directory.Authenticate(ctx, username, req.Password)
	if err != nil {
		logger.Error("session service login failed", err, logger.Fields{
			"username": username,
		})
		return failureResponse[models.LoginResponse](err), err
	}

	logger.Info("session service login success", logger.Fields{
		"username": username,
	})

	return commons.SuccessResponse("Login", models.LoginResponse{
		Username:      username,
		AccountNumber: accountNumber,
	}), nil
}

func (s *SessionService) Deposit(ctx context.Context, req models.TransactionRequest) (commons.Response[models.TransactionResponse], error) {
	return s.transact(ctx, req, domain.TransactionDeposit)
}

func (s *SessionService) Withdraw(ctx context.Context, req models.TransactionRequest) (commons.Response[models.TransactionResponse], error) {
	return s.transact(ctx, req, domain.TransactionWithdrawal)
}

// transact moves the money first and logs it second, so a rejected deposit or
// withdrawal never reaches the transaction log.
func (s *SessionService) transact(ctx context.Context, req models.TransactionRequest, txType domain.TransactionType) (commons.Response[models.TransactionResponse], error) {
	op := strings.ToLower(string(txType))
	logger.Info("session service "+op+" request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	currency, amount, err := req.Parse()
	if err != nil {
		logger.Error("session service "+op+" validation failed", err, nil)
		return failureResponse[models.TransactionResponse](err), err
	}

	username := strings.TrimSpace(req.Username)
	accountNumber, err := s.directory.AccountNumber(ctx, username)
	if err != nil {
		logger.Error("session service "+op+" account lookup failed", err, logger.Fields{
			"username": username,
		})
		return failureResponse[models.TransactionResponse](err), err
	}

	move := s.ledger.Deposit
	if txType == domain.TransactionWithdrawal {
		move = s.ledger.Withdraw
	}

	balance, err := move(ctx, accountNumber, currency, amount)
	if err != nil {
		logger.Error("session service "+op+" failed", err, logger.Fields{
			"accountNumber": accountNumber,
			"currency":      currency,
			"amount":        amount,
		})
		return failureResponse[models.TransactionResponse](err), err
	}

	entry, err := s.history.Record(ctx, username, txType, currency, amount, balance)
	if err != nil {
		logger.Error("session service "+op+" record failed", err, logger.Fields{
			"username": username,
		})
		return failureResponse[models.TransactionResponse](err), err
	}

	response := models.TransactionResponse{
		ID:            entry.ID,
		Username:      username,
		AccountNumber: accountNumber,
		Type:          string(txType),
		Currency:      currency.String(),
		Amount:        amount.String(),
		Balance:       balance.StringFixed(2),
	}

	logger.Info("session service "+op+" success", logger.Fields{
		"transactionId": response.ID,
		"accountNumber": response.AccountNumber,
		"currency":      response.Currency,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse(string(txType), response), nil
}

// GetBalance reads the stored balance of one currency. Balances are kept per
// currency, so nothing is converted here.
func (s *SessionService) GetBalance(ctx context.Context, req models.BalanceRequest) (commons.Response[models.BalanceResponse], error) {
	currency, err := req.Parse()
	if err != nil {
		return failureResponse[models.BalanceResponse](err), err
	}

	username := strings.TrimSpace(req.Username)
	accountNumber, err := s.directory.AccountNumber(ctx, username)
	if err != nil {
		logger.Error("session service get balance account lookup failed", err, logger.Fields{
			"username": username,
		})
		return failureResponse[models.BalanceResponse](err), err
	}

	balance, err := s.ledger.GetBalance(ctx, accountNumber, currency)
	if err != nil {
		logger.Error("session service get balance failed", err, logger.Fields{
			"accountNumber": accountNumber,
			"currency":      currency,
		})
		return failureResponse[models.BalanceResponse](err), err
	}

	return commons.SuccessResponse("Balance", models.BalanceResponse{
		Currency: currency.String(),
		Balance:  balance.StringFixed(2),
	}), nil
}

func (s *SessionService) GetRates(ctx context.Context) (commons.Response[[]models.RateResponse], error) {
	return s.rates.GetRates(ctx)
}

func (s *SessionService) ConvertAmount(ctx context.Context, req models.ConvertRequest) (commons.Response[models.ConvertResponse], error) {
	logger.Info("session service convert amount request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	amount, from, to, err := req.Parse()
	if err != nil {
		logger.Error("session service convert amount validation failed", err, nil)
		return failureResponse[models.ConvertResponse](err), err
	}

	converted, rate, err := s.rates.ConvertRate(ctx, amount, from, to)
	if err != nil {
		logger.Error("session service convert amount failed", err, logger.Fields{
			"fromCurrency": from,
			"toCurrency":   to,
		})
		return failureResponse[models.ConvertResponse](err), err
	}

	return commons.SuccessResponse("Currency Conversion", models.ConvertResponse{
		Amount:          amount.String(),
		FromCurrency:    from.String(),
		ToCurrency:      to.String(),
		ConvertedAmount: converted.StringFixed(2),
		RateUsed:        rate.String(),
	}), nil
}

func (s *SessionService) ExportHistory(ctx context.Context, req models.ExportHistoryRequest) (commons.Response[models.ExportHistoryResponse], error) {
	logger.Info("session service export history request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("session service export history validation failed", err, nil)
		return failureResponse[models.ExportHistoryResponse](err), err
	}

	username := strings.TrimSpace(req.Username)
	rows, err := s.history.Export(ctx, username)
	if err != nil {
		logger.Error("session service export history failed", err, logger.Fields{
			"username": username,
		})
		return failureResponse[models.ExportHistoryResponse](err), err
	}

	fileName, err := s.exporter.Write(username, rows)
	if err != nil {
		logger.Error("session service export history write failed", err, logger.Fields{
			"username": username,
		})
		return failureResponse[models.ExportHistoryResponse](err), err
	}

	response := models.ExportHistoryResponse{
		Username:         username,
		FileName:         fileName,
		TransactionCount: len(rows) - 2,
	}

	logger.Info("session service export history success", logger.Fields{
		"username":         response.Username,
		"fileName":         response.FileName,
		"transactionCount": response.TransactionCount,
	})

	return commons.SuccessResponse("Transaction History", response), nil
}

func mapBalancesToResponse(balances []domain.Balance) []models.BalanceResponse {
	out := make([]models.BalanceResponse, 0, len(balances))
	for _, balance := range balances {
		out = append(out, models.BalanceResponse{
			Currency: balance.Currency.String(),
			Balance:  balance.Amount.StringFixed(2),
		})
	}

	return out
}
