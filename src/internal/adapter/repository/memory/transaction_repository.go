package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/google/uuid"
)

type transactionLog struct {
	accountNumber string
	entries       []domain.Transaction
}

type TransactionRepository struct {
	mu   sync.RWMutex
	logs map[string]*transactionLog
	now  func() time.Time
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		logs: make(map[string]*transactionLog),
		now:  time.Now,
	}
}

func (r *TransactionRepository) Open(_ context.Context, username string, accountNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.logs[username]; exists {
		return fmt.Errorf("open transaction log for %q: already open", username)
	}

	r.logs[username] = &transactionLog{accountNumber: accountNumber}
	return nil
}

// Append stamps the entry with an id, the owner's account number and the
// current time before adding it to the end of the owner's log.
func (r *TransactionRepository) Append(_ context.Context, entry domain.Transaction) (domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log, ok := r.logs[entry.Username]
	if !ok {
		return domain.Transaction{}, fmt.Errorf("append transaction for %q: %w", entry.Username, domain.ErrNoHistory)
	}

	entry.ID = uuid.NewString()
	entry.AccountNumber = log.accountNumber
	entry.CreatedAt = r.now().UTC()
	log.entries = append(log.entries, entry)

	return entry, nil
}

func (r *TransactionRepository) ListByUsername(_ context.Context, username string) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log, ok := r.logs[username]
	if !ok {
		return nil, fmt.Errorf("list transactions for %q: %w", username, domain.ErrNoHistory)
	}

	out := make([]domain.Transaction, len(log.entries))
	copy(out, log.entries)
	return out, nil
}
