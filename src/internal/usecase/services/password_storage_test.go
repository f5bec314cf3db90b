package services_test

import (
	"strings"
	"testing"

	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/api-sage/binary-finance/src/internal/usecase/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordStoragePlain(t *testing.T) {
	storage, err := services.NewPasswordStorage("plain")
	require.NoError(t, err)

	secret, err := storage.Seal("pw")
	require.NoError(t, err)
	assert.Equal(t, "pw", secret)

	ok, err := storage.Matches(secret, "pw")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = storage.Matches(secret, "PW")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordStorageBcrypt(t *testing.T) {
	storage, err := services.NewPasswordStorage("bcrypt")
	require.NoError(t, err)

	secret, err := storage.Seal("pw")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", secret)

	ok, err := storage.Matches(secret, "pw")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = storage.Matches(secret, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordStorageUnknownMode(t *testing.T) {
	_, err := services.NewPasswordStorage("rot13")
	assert.Error(t, err)
}

func TestPasswordStorageBcryptRejectsLongPassword(t *testing.T) {
	storage, err := services.NewPasswordStorage("bcrypt")
	require.NoError(t, err)

	_, err = storage.Seal(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)

	secret, err := storage.Seal(strings.Repeat("a", 72))
	require.NoError(t, err)
	ok, err := storage.Matches(secret, strings.Repeat("a", 72))
	require.NoError(t, err)
	assert.True(t, ok)
}
