package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/api-sage/binary-finance/src/internal/adapter/console/controller"
	"github.com/api-sage/binary-finance/src/internal/app"
	"github.com/api-sage/binary-finance/src/internal/config"
	"github.com/api-sage/binary-finance/src/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := logger.Initialize(cfg.LogLevel, cfg.LogOutput); err != nil {
		log.Fatalf("initialize logger: %v", err)
	}
	defer logger.Sync()

	bank, err := app.New(cfg)
	if err != nil {
		logger.Error("start teller failed", err, nil)
		log.Fatalf("start teller: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []controller.Option
	if secrets, ok := controller.NewTerminalSecretReader(os.Stdin, os.Stdout); ok {
		opts = append(opts, controller.WithSecretReader(secrets))
	}

	if err := bank.Controller(os.Stdin, os.Stdout, opts...).Run(ctx); err != nil {
		logger.Error("teller stopped", err, nil)
		log.Printf("teller stopped: %v", err)
	}
}
