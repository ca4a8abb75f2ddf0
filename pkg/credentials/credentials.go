// Package credentials derives and verifies password credentials and
// generates opaque user identifiers. Plaintext passwords are never stored;
// only the salt/hash pair leaves this package.
package credentials

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes   = 16
	iterations  = 1000
	keyBytes    = 64
	userIDBytes = 8

	userIDPrefix = "user_"
)

// HashPassword generates a fresh random salt and derives a credential from
// the plaintext. Both return values are hex-encoded. Repeated calls with the
// same plaintext yield different pairs because the salt is random per call.
func HashPassword(plaintext string) (salt, hash string, err error) {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}
	salt = hex.EncodeToString(b)
	return salt, deriveHex(plaintext, salt), nil
}

// VerifyPassword re-derives the hash with the stored salt and compares it to
// the expected value in constant time.
func VerifyPassword(plaintext, salt, expectedHash string) bool {
	derived := deriveHex(plaintext, salt)
	return subtle.ConstantTimeCompare([]byte(derived), []byte(expectedHash)) == 1
}

// NewUserID returns an opaque identifier of the form "user_" followed by
// 16 hex characters. Uniqueness rests on the randomness; the storage layer's
// unique constraint is the only enforcement.
func NewUserID() (string, error) {
	b := make([]byte, userIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate user id: %w", err)
	}
	return userIDPrefix + hex.EncodeToString(b), nil
}

// deriveHex runs PBKDF2-SHA512 over the plaintext with the hex salt string
// as the salt input, matching the stored-credential format.
func deriveHex(plaintext, salt string) string {
	key := pbkdf2.Key([]byte(plaintext), []byte(salt), iterations, keyBytes, sha512.New)
	return hex.EncodeToString(key)
}
