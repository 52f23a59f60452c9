package password_test

import (
	"errors"
	"strings"
	"testing"

	"hms/shared/password"

	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:        "valid password",
			password:    "mysecretpassword",
			expectError: false,
		},
		{
			name:        "empty password",
			password:    "",
			expectError: true,
		},
		{
			name:        "short password",
			password:    "a",
			expectError: false,
		},
		{
			name:        "password with special characters",
			password:    "p@ssw0rd!#$%",
			expectError: false,
		},
		{
			name:        "unicode password",
			password:    "пароль密码",
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}

			if hash == "" {
				t.Error("expected non-empty hash")
			}

			if hash == tt.password {
				t.Error("hash must not equal the plain password")
			}

			if !strings.HasPrefix(hash, "$2") {
				t.Errorf("expected bcrypt hash prefix, got: %s", hash)
			}
		})
	}
}

func TestHashTooLongPassword(t *testing.T) {
	// bcrypt rejects inputs longer than 72 bytes
	long := strings.Repeat("a", 100)

	_, err := password.Hash(long)
	if err == nil {
		t.Error("expected error for password longer than 72 bytes")
	}
}

func TestVerify(t *testing.T) {
	const plain = "mysecretpassword"

	hash, err := password.Hash(plain)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	tests := []struct {
		name          string
		password      string
		hash          string
		expectedError error
	}{
		{
			name:          "matching password",
			password:      plain,
			hash:          hash,
			expectedError: nil,
		},
		{
			name:          "wrong password",
			password:      "wrongpassword",
			hash:          hash,
			expectedError: password.ErrInvalidPassword,
		},
		{
			name:          "empty password",
			password:      "",
			hash:          hash,
			expectedError: password.ErrInvalidPassword,
		},
		{
			name:          "empty hash",
			password:      plain,
			hash:          "",
			expectedError: password.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedError == nil {
				if err != nil {
					t.Errorf("expected no error, got: %v", err)
				}

				return
			}

			if !errors.Is(err, tt.expectedError) {
				t.Errorf("expected error %v, got: %v", tt.expectedError, err)
			}
		})
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	err := password.Verify("mysecretpassword", "not-a-bcrypt-hash")
	if err == nil {
		t.Error("expected error for malformed hash")
	}

	if errors.Is(err, password.ErrInvalidPassword) {
		t.Error("malformed hash should not map to ErrInvalidPassword")
	}
}

func TestDefaultCost(t *testing.T) {
	if password.DefaultCost != bcrypt.DefaultCost {
		t.Errorf("expected DefaultCost to be %d, got %d", bcrypt.DefaultCost, password.DefaultCost)
	}
}

func TestHashUniqueness(t *testing.T) {
	// The salt makes two hashes of the same input differ.
	first, err := password.Hash("samepassword")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	second, err := password.Hash("samepassword")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if first == second {
		t.Error("expected different hashes for the same password")
	}

	if err := password.Verify("samepassword", first); err != nil {
		t.Errorf("first hash failed verification: %v", err)
	}

	if err := password.Verify("samepassword", second); err != nil {
		t.Errorf("second hash failed verification: %v", err)
	}
}
