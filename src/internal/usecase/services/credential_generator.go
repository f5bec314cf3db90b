package services

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/api-sage/binary-finance/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.CredentialGenerator = (*RandomCredentialGenerator)(nil)

const (
	passwordLength      = 6
	accountNumberLength = 6

	passwordAlphabet = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	digitAlphabet = "0123456789"
)

type RandomCredentialGenerator struct {
	source io.Reader
}

func NewCredentialGenerator() *RandomCredentialGenerator {
	return &RandomCredentialGenerator{source: rand.Reader}
}

// NewCredentialGeneratorFromSource draws from source instead of the system
// CSPRNG. Tests use it to get repeatable output.
func NewCredentialGeneratorFromSource(source io.Reader) *RandomCredentialGenerator {
	return &RandomCredentialGenerator{source: source}
}

func (g *RandomCredentialGenerator) GeneratePassword() (string, error) {
	password, err := randomString(g.source, passwordAlphabet, passwordLength)
	if err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}

	return password, nil
}

func (g *RandomCredentialGenerator) GenerateAccountNumber() (string, error) {
	accountNumber, err := randomString(g.source, digitAlphabet, accountNumberLength)
	if err != nil {
		return "", fmt.Errorf("generate account number: %w", err)
	}

	return accountNumber, nil
}

func randomString(source io.Reader, alphabet string, length int) (string, error) {
	limit := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		idx, err := rand.Int(source, limit)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[idx.Int64()]
	}

	return string(out), nil
}
