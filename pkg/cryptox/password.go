package cryptox

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when the caller passes a cost
// outside bcrypt's supported range. Raising it makes offline guessing harder
// at the price of slower verification.
const DefaultCost = bcrypt.DefaultCost

// HashPassword derives a salted bcrypt hash of password. The salt is
// generated by bcrypt itself and embedded in the returned encoded string.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a bcrypt encoded
// hash. The comparison inside bcrypt is constant time. Returns nil on match.
func VerifyPassword(password, encodedHash string) error {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
}
