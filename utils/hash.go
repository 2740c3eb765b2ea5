package utils

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/voguevault/voguevault-backend-go/apperr"
)

// hashCost keeps a single verification under ~100ms on commodity hardware.
const hashCost = 10

// normalizeSecret collapses a secret to a fixed-width bcrypt input.
// bcrypt only accepts 72 bytes, while signup passwords may be up to 128
// characters; pre-digesting keeps every byte of the secret significant.
// Base64 keeps NUL bytes out of the bcrypt input.
func normalizeSecret(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	buf := make([]byte, base64.RawStdEncoding.EncodedLen(len(sum)))
	base64.RawStdEncoding.Encode(buf, sum[:])
	return buf
}

// HashSecret digests a password or OTP with a per-call salt.
func HashSecret(secret string) (string, error) {
	if secret == "" {
		return "", apperr.NewValidation("secret must not be empty")
	}
	digest, err := bcrypt.GenerateFromPassword(normalizeSecret(secret), hashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifySecret reports whether secret produced digest. A mismatch returns
// false with a nil error; only malformed input or a corrupt digest errors.
func VerifySecret(secret, digest string) (bool, error) {
	if secret == "" || digest == "" {
		return false, apperr.NewValidation("secret and digest must not be empty")
	}
	err := bcrypt.CompareHashAndPassword([]byte(digest), normalizeSecret(secret))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
