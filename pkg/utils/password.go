package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the unsalted hex SHA-256 digest stored for protected forms.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func VerifyPassword(password, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(HashPassword(password)), []byte(digest)) == 1
}
