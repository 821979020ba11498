package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt hash from the given plaintext
// password using the default cost. The result is safe to persist.
//
// Returns an error if bcrypt rejects the input (e.g. the plaintext exceeds
// bcrypt's 72-byte limit).
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt hash. Any bcrypt failure (malformed hash included) is treated as a
// mismatch — callers never need to distinguish the cases.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
