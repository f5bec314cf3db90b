package controller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/api-sage/binary-finance/src/internal/usecase/service_interfaces"
)

// SecretReader reads a line without echoing it.
type SecretReader interface {
	ReadSecret(prompt string) (string, error)
}

type Option func(*Controller)

func WithSecretReader(secrets SecretReader) Option {
	return func(c *Controller) {
		c.secrets = secrets
	}
}

func WithDisplayCurrency(currency domain.Currency) Option {
	return func(c *Controller) {
		if currency.IsSupported() {
			c.displayCurrency = currency
		}
	}
}

func WithoutColor() Option {
	return func(c *Controller) {
		c.palette.disable()
	}
}

// Controller is the terminal teller form. It keeps the logged-in user and the
// display currency; everything else lives behind the session service.
type Controller struct {
	service         service_interfaces.SessionService
	in              *bufio.Scanner
	out             io.Writer
	secrets         SecretReader
	palette         palette
	displayCurrency domain.Currency
	commands        map[string]command

	username      string
	accountNumber string
}

func New(service service_interfaces.SessionService, in io.Reader, out io.Writer, opts ...Option) *Controller {
	c := &Controller{
		service:         service,
		in:              bufio.NewScanner(in),
		out:             out,
		palette:         newPalette(),
		displayCurrency: domain.USD,
	}
	c.commands = c.routes()

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Run reads commands until quit, end of input or ctx is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	c.printf("Binary Finance. Type \"help\" to list commands.\n")

	for {
		line, err := c.readLine(ctx, c.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if quit := c.dispatch(ctx, strings.ToLower(fields[0]), fields[1:]); quit {
			c.printf("Goodbye.\n")
			return nil
		}
	}
}

func (c *Controller) prompt() string {
	if c.username == "" {
		return "> "
	}
	return c.username + "> "
}

type lineResult struct {
	text string
	ok   bool
}

func (c *Controller) readRaw(ctx context.Context, prompt string) (string, error) {
	c.printf("%s", prompt)

	result := make(chan lineResult, 1)
	go func() {
		ok := c.in.Scan()
		result <- lineResult{text: c.in.Text(), ok: ok}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-result:
		if !r.ok {
			if err := c.in.Err(); err != nil {
				return "", fmt.Errorf("read input: %w", err)
			}
			return "", io.EOF
		}
		return r.text, nil
	}
}

func (c *Controller) readLine(ctx context.Context, prompt string) (string, error) {
	line, err := c.readRaw(ctx, prompt)
	return strings.TrimSpace(line), err
}

func (c *Controller) readSecret(ctx context.Context, prompt string) (string, error) {
	if c.secrets == nil {
		return c.readRaw(ctx, prompt)
	}

	// The terminal read cannot be interrupted, so a signal that arrived
	// while it waited is only seen here.
	secret, err := c.secrets.ReadSecret(prompt)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return secret, nil
}

func (c *Controller) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
