package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/api-sage/binary-finance/src/internal/adapter/console/models"
	"github.com/api-sage/binary-finance/src/internal/commons"
	"github.com/api-sage/binary-finance/src/internal/domain"
)

// reportFailure shows the failure message box and reports whether there was one.
func reportFailure[T any](c *Controller, name string, resp commons.Response[T], err error) bool {
	if err == nil && resp.Success {
		return false
	}

	logError(name, c.username, err, resp.Message)
	text := resp.ErrorText()
	if text == "" && err != nil {
		text = err.Error()
	}
	c.showFailure(resp.Message, text)
	return true
}

func (c *Controller) register(ctx context.Context, _ []string) {
	username, err := c.readLine(ctx, "Username: ")
	if err != nil {
		return
	}
	password, err := c.readSecret(ctx, "Password (leave blank to generate): ")
	if err != nil {
		return
	}

	resp, err := c.service.Register(ctx, models.RegisterRequest{Username: username, Password: password})
	if reportFailure(c, "register", resp, err) {
		return
	}

	data := resp.Data
	c.showInfo(resp.Message, fmt.Sprintf("Registered User - Username: %s, Account Number: %s", data.Username, data.AccountNumber))
	if data.GeneratedPassword != "" {
		c.printf("Generated password: %s\n", data.GeneratedPassword)
	}
	c.printf("Opening balances: %s\n", formatBalances(data.Balances))
}

func (c *Controller) login(ctx context.Context, _ []string) {
	username, err := c.readLine(ctx, "Username: ")
	if err != nil {
		return
	}
	password, err := c.readSecret(ctx, "Password: ")
	if err != nil {
		return
	}

	resp, err := c.service.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if reportFailure(c, "login", resp, err) {
		return
	}

	c.username = resp.Data.Username
	c.accountNumber = resp.Data.AccountNumber
	c.showInfo(resp.Message, "Logged In - Username: "+c.username)
	c.showBalance(ctx)
}

func (c *Controller) logout(context.Context, []string) {
	username := c.username
	c.username = ""
	c.accountNumber = ""
	c.showInfo("Logout", "Logged Out - Username: "+username)
}

func (c *Controller) deposit(ctx context.Context, args []string) {
	resp, err := c.service.Deposit(ctx, c.transactionRequest(args))
	c.afterTransaction(ctx, "deposit", resp, err)
}

func (c *Controller) withdraw(ctx context.Context, args []string) {
	resp, err := c.service.Withdraw(ctx, c.transactionRequest(args))
	c.afterTransaction(ctx, "withdraw", resp, err)
}

// transactionRequest reads "<amount> [currency]"; the currency falls back to
// the display currency.
func (c *Controller) transactionRequest(args []string) models.TransactionRequest {
	req := models.TransactionRequest{
		Username: c.username,
		Currency: c.displayCurrency.String(),
	}
	if len(args) > 0 {
		req.Amount = args[0]
	}
	if len(args) > 1 {
		req.Currency = args[1]
	}

	return req
}

func (c *Controller) afterTransaction(ctx context.Context, name string, resp commons.Response[models.TransactionResponse], err error) {
	if reportFailure(c, name, resp, err) {
		return
	}

	data := resp.Data
	c.showInfo(resp.Message, fmt.Sprintf("%s successful. Current balance: %s %s", data.Type, data.Currency, data.Balance))
	c.showBalance(ctx)
}

func (c *Controller) balance(ctx context.Context, args []string) {
	if len(args) == 0 {
		c.showBalance(ctx)
		return
	}

	resp, err := c.service.GetBalance(ctx, models.BalanceRequest{Username: c.username, Currency: args[0]})
	if reportFailure(c, "balance", resp, err) {
		return
	}

	c.displayCurrency = domain.Currency(resp.Data.Currency)
	c.printf("Current Balance: %s %s\n", resp.Data.Currency, resp.Data.Balance)
}

// showBalance prints the balance in the display currency.
func (c *Controller) showBalance(ctx context.Context) {
	resp, err := c.service.GetBalance(ctx, models.BalanceRequest{Username: c.username, Currency: c.displayCurrency.String()})
	if reportFailure(c, "balance", resp, err) {
		return
	}

	c.printf("Current Balance: %s %s\n", resp.Data.Currency, resp.Data.Balance)
}

func (c *Controller) rates(ctx context.Context, _ []string) {
	resp, err := c.service.GetRates(ctx)
	if reportFailure(c, "rates", resp, err) {
		return
	}

	for _, rate := range *resp.Data {
		if rate.FromCurrency == rate.ToCurrency {
			continue
		}
		c.printf("  1 %s = %s %s\n", rate.FromCurrency, rate.Rate, rate.ToCurrency)
	}
}

func (c *Controller) convert(ctx context.Context, args []string) {
	if len(args) != 3 {
		c.showFailure("Usage", "convert <amount> <from> <to>")
		return
	}

	resp, err := c.service.ConvertAmount(ctx, models.ConvertRequest{
		Amount:       args[0],
		FromCurrency: args[1],
		ToCurrency:   args[2],
	})
	if reportFailure(c, "convert", resp, err) {
		return
	}

	data := resp.Data
	c.showInfo(resp.Message, fmt.Sprintf("%s %s = %s %s (rate %s)", data.Amount, data.FromCurrency, data.ConvertedAmount, data.ToCurrency, data.RateUsed))
}

func (c *Controller) export(ctx context.Context, _ []string) {
	resp, err := c.service.ExportHistory(ctx, models.ExportHistoryRequest{Username: c.username})
	if reportFailure(c, "export", resp, err) {
		return
	}

	c.showInfo(resp.Message, "Transaction history saved to "+resp.Data.FileName)
}

func formatBalances(balances []models.BalanceResponse) string {
	parts := make([]string, 0, len(balances))
	for _, balance := range balances {
		parts = append(parts, balance.Currency+" "+balance.Balance)
	}
	return strings.Join(parts, ", ")
}
