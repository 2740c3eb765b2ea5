package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginOTPChallengeSetsBothFields(t *testing.T) {
	u := &User{}
	now := time.Now()

	u.BeginOTPChallenge("digest-1", now)
	require.NotNil(t, u.OTPHash)
	require.NotNil(t, u.OTPExpiresAt)
	assert.Equal(t, "digest-1", *u.OTPHash)
	assert.Equal(t, now.Add(OTPTTL), *u.OTPExpiresAt)
}

func TestBeginOTPChallengeReplacesOutstandingChallenge(t *testing.T) {
	u := &User{}
	now := time.Now()

	u.BeginOTPChallenge("digest-1", now)
	u.BeginOTPChallenge("digest-2", now.Add(time.Minute))

	assert.Equal(t, "digest-2", *u.OTPHash)
	assert.Equal(t, now.Add(time.Minute).Add(OTPTTL), *u.OTPExpiresAt)
}

func TestClearOTPChallengeIsIdempotent(t *testing.T) {
	u := &User{}
	u.BeginOTPChallenge("digest", time.Now())

	u.ClearOTPChallenge()
	assert.Nil(t, u.OTPHash)
	assert.Nil(t, u.OTPExpiresAt)

	u.ClearOTPChallenge()
	assert.Nil(t, u.OTPHash)
	assert.Nil(t, u.OTPExpiresAt)
}

func TestOTPExpiredBoundary(t *testing.T) {
	u := &User{}
	now := time.Now()
	u.BeginOTPChallenge("digest", now)

	expiry := now.Add(OTPTTL)
	assert.False(t, u.OTPExpired(now))
	assert.False(t, u.OTPExpired(expiry.Add(-time.Nanosecond)))
	// At the expiry instant the OTP is already unusable.
	assert.True(t, u.OTPExpired(expiry))
	assert.True(t, u.OTPExpired(expiry.Add(time.Hour)))
}

func TestOTPExpiredWithoutChallenge(t *testing.T) {
	u := &User{}
	assert.True(t, u.OTPExpired(time.Now()))
}

func TestUserJSONHidesSecrets(t *testing.T) {
	hash := "otp-digest"
	exp := time.Now()
	u := &User{
		Name:         "Alice",
		Password:     "password-hash",
		OTPHash:      &hash,
		OTPExpiresAt: &exp,
		Token:        "session-token",
	}

	raw, err := json.Marshal(u)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "password")
	assert.NotContains(t, decoded, "otp")
	assert.NotContains(t, decoded, "otp_expire")
	assert.NotContains(t, decoded, "token")
	assert.NotContains(t, string(raw), "password-hash")
	assert.NotContains(t, string(raw), "otp-digest")
}

func TestProfileOmitsSecrets(t *testing.T) {
	u := &User{Name: "Alice", Email: "a@example.com", Mobile: "123", Password: "hash"}
	p := u.Profile()
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, "a@example.com", p.Email)
	assert.Equal(t, "123", p.Mobile)
}
