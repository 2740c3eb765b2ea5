package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSecret(t *testing.T) string {
	t.Helper()
	buf := make([]byte, 16)
	_, err := rand.Read(buf)
	require.NoError(t, err)
	return hex.EncodeToString(buf)
}

func TestHashSecretRoundTrip(t *testing.T) {
	for i := 0; i < 8; i++ {
		secret := randomSecret(t)

		digest, err := HashSecret(secret)
		require.NoError(t, err)
		assert.NotEqual(t, secret, digest)

		ok, err := VerifySecret(secret, digest)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = VerifySecret(secret+"x", digest)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

// Signup accepts passwords up to 128 characters, well past bcrypt's
// 72-byte input cap, so long secrets must hash and verify cleanly.
func TestHashSecretLongSecrets(t *testing.T) {
	for _, n := range []int{72, 73, 100, 128} {
		secret := strings.Repeat("x", n)

		digest, err := HashSecret(secret)
		require.NoError(t, err, "length %d", n)

		ok, err := VerifySecret(secret, digest)
		require.NoError(t, err, "length %d", n)
		assert.True(t, ok, "length %d", n)

		ok, err = VerifySecret(strings.Repeat("y", n), digest)
		require.NoError(t, err, "length %d", n)
		assert.False(t, ok, "length %d", n)
	}
}

func TestVerifySecretUsesFullLength(t *testing.T) {
	prefix := strings.Repeat("a", 72)
	digest, err := HashSecret(prefix + "1")
	require.NoError(t, err)

	// Secrets differing only past byte 72 must not collide.
	ok, err := VerifySecret(prefix+"2", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashSecretSaltsPerCall(t *testing.T) {
	first, err := HashSecret("correct horse battery staple")
	require.NoError(t, err)
	second, err := HashSecret("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestHashSecretEmptyInput(t *testing.T) {
	_, err := HashSecret("")
	assert.Error(t, err)
}

func TestVerifySecretEmptyInput(t *testing.T) {
	digest, err := HashSecret("some-password")
	require.NoError(t, err)

	_, err = VerifySecret("", digest)
	assert.Error(t, err)

	_, err = VerifySecret("some-password", "")
	assert.Error(t, err)
}

func TestVerifySecretMismatchIsNotAnError(t *testing.T) {
	digest, err := HashSecret("right-password")
	require.NoError(t, err)

	ok, err := VerifySecret("wrong-password", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}
