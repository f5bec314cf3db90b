package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/api-sage/binary-finance/src/internal/logger"
)

type UserRepository struct {
	mu              sync.RWMutex
	byUsername      map[string]domain.User
	byAccountNumber map[string]string
	now             func() time.Time
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byUsername:      make(map[string]domain.User),
		byAccountNumber: make(map[string]string),
		now:             time.Now,
	}
}

func (r *UserRepository) Create(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[user.Username]; exists {
		return domain.User{}, fmt.Errorf("create user %q: %w", user.Username, domain.ErrDuplicateUsername)
	}

	user.CreatedAt = r.now().UTC()
	r.byUsername[user.Username] = user
	r.byAccountNumber[user.AccountNumber] = user.Username

	logger.Debug("user repository create success", logger.Fields{
		"username":      user.Username,
		"accountNumber": user.AccountNumber,
	})

	return user, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byUsername[username]
	if !ok {
		return domain.User{}, domain.ErrRecordNotFound
	}

	return user, nil
}

func (r *UserRepository) ExistsByAccountNumber(_ context.Context, accountNumber string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byAccountNumber[accountNumber]
	return ok, nil
}
