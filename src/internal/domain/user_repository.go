package domain

import "context"

type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error)
}
