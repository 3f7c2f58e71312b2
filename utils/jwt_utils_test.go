package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", time.Hour)
	require.NoError(t, err)

	role, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
