package models

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerificationCode(t *testing.T) {
	code, err := GenerateVerificationCode()
	require.NoError(t, err)
	assert.Len(t, code, 6)

	digitRegex := regexp.MustCompile(`^\d{6}$`)
	assert.True(t, digitRegex.MatchString(code), "code should be 6 digits")
	assert.True(t, code >= "100000" && code <= "999999")
}

func TestGenerateVerificationCode_RandError(t *testing.T) {
	old := randRead
	randRead = func(b []byte) (int, error) { return 0, errors.New("no entropy") }
	defer func() { randRead = old }()

	_, err := GenerateVerificationCode()
	assert.Error(t, err)
}

func TestNewConfirmation(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	user := &User{ID: 7, Email: "a@example.com"}

	v, err := NewConfirmation(user, now)
	require.NoError(t, err)
	assert.Equal(t, uint(7), v.UserID)
	assert.Equal(t, "a@example.com", v.Email)
	assert.Equal(t, VerificationPurposeConfirm, v.Purpose)
	assert.Equal(t, now.Add(ConfirmationTTL), v.ExpiresAt)
	assert.Len(t, v.Code, 6)
}

func TestEmailVerification_IsValid(t *testing.T) {
	now := time.Now()

	assert.True(t, (&EmailVerification{ExpiresAt: now.Add(time.Hour)}).IsValid())
	assert.False(t, (&EmailVerification{Used: true, ExpiresAt: now.Add(time.Hour)}).IsValid())
	assert.False(t, (&EmailVerification{ExpiresAt: now.Add(-time.Hour)}).IsValid())
	assert.True(t, (&EmailVerification{ExpiresAt: now.Add(-time.Hour)}).IsExpired())
}
