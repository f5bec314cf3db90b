package services_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/api-sage/binary-finance/src/internal/usecase/services"
)

const printableSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

func TestCredentialGeneratorPasswordShape(t *testing.T) {
	gen := services.NewCredentialGenerator()

	for i := 0; i < 50; i++ {
		password, err := gen.GeneratePassword()
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if len(password) != 6 {
			t.Fatalf("expected 6 characters, got %q", password)
		}
		for _, r := range password {
			isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
			isDigit := r >= '0' && r <= '9'
			if !isLetter && !isDigit && !strings.ContainsRune(printableSymbols, r) {
				t.Fatalf("unexpected character %q in %q", r, password)
			}
		}
	}
}

func TestCredentialGeneratorAccountNumberShape(t *testing.T) {
	gen := services.NewCredentialGenerator()

	for i := 0; i < 50; i++ {
		accountNumber, err := gen.GenerateAccountNumber()
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if len(accountNumber) != 6 {
			t.Fatalf("expected 6 digits, got %q", accountNumber)
		}
		if strings.Trim(accountNumber, "0123456789") != "" {
			t.Fatalf("expected only digits, got %q", accountNumber)
		}
	}
}

func TestCredentialGeneratorFromSourceIsRepeatable(t *testing.T) {
	gen := services.NewCredentialGeneratorFromSource(bytes.NewReader(make([]byte, 64)))

	password, err := gen.GeneratePassword()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if password != "aaaaaa" {
		t.Fatalf("expected aaaaaa from a zero source, got %q", password)
	}

	accountNumber, err := gen.GenerateAccountNumber()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if accountNumber != "000000" {
		t.Fatalf("expected 000000 from a zero source, got %q", accountNumber)
	}
}

func TestCredentialGeneratorExhaustedSource(t *testing.T) {
	gen := services.NewCredentialGeneratorFromSource(bytes.NewReader(nil))

	if _, err := gen.GeneratePassword(); err == nil {
		t.Fatal("expected error from an empty source")
	}
	if _, err := gen.GenerateAccountNumber(); err == nil {
		t.Fatal("expected error from an empty source")
	}
}
