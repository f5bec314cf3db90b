package service_interfaces

import (
	"context"

	"github.com/api-sage/binary-finance/src/internal/domain"
)

type DirectoryService interface {
	Register(ctx context.Context, username string, password string) (domain.Registration, error)
	Authenticate(ctx context.Context, username string, password string) (string, error)
	AccountNumber(ctx context.Context, username string) (string, error)
}
