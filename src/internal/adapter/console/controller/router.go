package controller

import (
	"context"
	"sort"
	"time"
)

type command struct {
	usage      string
	summary    string
	needsLogin bool
	run        func(ctx context.Context, args []string)
	quits      bool
}

func (c *Controller) routes() map[string]command {
	quit := command{usage: "quit", summary: "leave the teller", quits: true}

	return map[string]command{
		"register": {usage: "register", summary: "create a user with zero balances", run: c.register},
		"login":    {usage: "login", summary: "log in as an existing user", run: c.login},
		"deposit":  {usage: "deposit <amount> [currency]", summary: "add funds in one currency", needsLogin: true, run: c.deposit},
		"withdraw": {usage: "withdraw <amount> [currency]", summary: "take funds from one currency", needsLogin: true, run: c.withdraw},
		"balance":  {usage: "balance [currency]", summary: "show a balance and set the display currency", needsLogin: true, run: c.balance},
		"rates":    {usage: "rates", summary: "list the exchange rates", run: c.rates},
		"convert":  {usage: "convert <amount> <from> <to>", summary: "convert an amount between currencies", run: c.convert},
		"export":   {usage: "export", summary: "save the transaction history as CSV", needsLogin: true, run: c.export},
		"logout":   {usage: "logout", summary: "end the current session", needsLogin: true, run: c.logout},
		"help":     {usage: "help", summary: "list commands", run: c.help},
		"quit":     quit,
		"exit":     quit,
	}
}

// dispatch runs one command and reports whether the loop should stop.
func (c *Controller) dispatch(ctx context.Context, name string, args []string) bool {
	start := time.Now()
	logCommand(name, c.username)

	cmd, ok := c.commands[name]
	if !ok {
		c.showError("Unknown Command", `Type "help" to list commands.`)
		logOutcome(name, c.username, false, start)
		return false
	}
	if cmd.quits {
		logOutcome(name, c.username, true, start)
		return true
	}
	if cmd.needsLogin && c.username == "" {
		c.showError("Login Required", "Please log in first.")
		logOutcome(name, c.username, false, start)
		return false
	}

	cmd.run(ctx, args)
	logOutcome(name, c.username, true, start)
	return false
}

func (c *Controller) help(context.Context, []string) {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		if name == "exit" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd := c.commands[name]
		c.printf("  %-30s %s\n", cmd.usage, cmd.summary)
	}
}
