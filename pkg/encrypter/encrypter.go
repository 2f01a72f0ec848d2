package encrypter

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	// Hash derives a salted hash from the plaintext password.
	Hash(plain string) (string, error)

	// Verify reports whether plain matches the stored hash.
	Verify(plain, hash string) bool

	// IsHash reports whether the value looks like a hash this
	// hasher produced (used to detect plaintext passwords in config).
	IsHash(value string) bool
}

type bcryptHasher struct {
	cost int
}

// NewBcrypt creates a bcrypt-backed PasswordHasher.
// cost 0 selects bcrypt.DefaultCost.
func NewBcrypt(cost int) PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", errors.New("password is empty")
	}
	out, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash failed: %w", err)
	}
	return string(out), nil
}

func (h *bcryptHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func (h *bcryptHasher) IsHash(value string) bool {
	return strings.HasPrefix(value, "$2a$") ||
		strings.HasPrefix(value, "$2b$") ||
		strings.HasPrefix(value, "$2y$")
}
