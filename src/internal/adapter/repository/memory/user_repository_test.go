package memory

import (
	"context"
	"testing"

	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryCreateAndGet(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.User{Username: "alice", Secret: "pw", AccountNumber: "012345"})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "012345", got.AccountNumber)

	exists, err := repo.ExistsByAccountNumber(ctx, "012345")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepositoryDuplicateKeepsOriginal(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.User{Username: "alice", Secret: "first", AccountNumber: "111111"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, domain.User{Username: "alice", Secret: "second", AccountNumber: "222222"})
	require.ErrorIs(t, err, domain.ErrDuplicateUsername)

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Secret)

	exists, err := repo.ExistsByAccountNumber(ctx, "222222")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepositoryGetMissing(t *testing.T) {
	_, err := NewUserRepository().GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}
