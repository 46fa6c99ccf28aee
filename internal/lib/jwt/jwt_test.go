package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	maker := NewMaker("test_secret_key", time.Hour)

	tokenStr, err := maker.GenerateToken("reader@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := maker.ParseToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseToken_WrongSecret(t *testing.T) {
	maker := NewMaker("correct_secret", time.Hour)
	other := NewMaker("wrong_secret", time.Hour)

	tokenStr, err := maker.GenerateToken("reader@example.com")
	require.NoError(t, err)

	claims, err := other.ParseToken(tokenStr)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseToken_Expired(t *testing.T) {
	maker := NewMaker("test_secret_key", -time.Minute)

	tokenStr, err := maker.GenerateToken("reader@example.com")
	require.NoError(t, err)

	claims, err := maker.ParseToken(tokenStr)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseToken_Garbage(t *testing.T) {
	maker := NewMaker("test_secret_key", time.Hour)

	claims, err := maker.ParseToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
