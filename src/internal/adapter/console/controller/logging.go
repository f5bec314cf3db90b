package controller

import (
	"time"

	"github.com/api-sage/binary-finance/src/internal/logger"
)

func logCommand(name string, username string) {
	logger.Info("console command", logger.Fields{
		"command":  name,
		"username": username,
	})
}

func logOutcome(name string, username string, handled bool, start time.Time) {
	logger.Info("console command done", logger.Fields{
		"command":    name,
		"username":   username,
		"handled":    handled,
		"durationMs": time.Since(start).Milliseconds(),
	})
}

func logError(name string, username string, err error, title string) {
	logger.Error("console command error", err, logger.Fields{
		"command":  name,
		"username": username,
		"message":  title,
	})
}
