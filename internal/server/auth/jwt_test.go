package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/deathline/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	secret := []byte("k")

	tok, err := GenerateToken(42, secret, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := GetUserIDFromToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestGetUserIDFromToken_WrongSecret(t *testing.T) {
	tok, err := GenerateToken(1, []byte("a"), time.Minute)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(tok, []byte("b"))
	assert.True(t, errors.Is(err, common.ErrInvalidToken), "got %v", err)
}

func TestGetUserIDFromToken_Expired(t *testing.T) {
	tok, err := GenerateToken(1, []byte("k"), -time.Minute)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(tok, []byte("k"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetUserIDFromToken_Garbage(t *testing.T) {
	_, err := GetUserIDFromToken("not.a.token", []byte("k"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetUserIDFromToken_NonNumericSubject(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = GetUserIDFromToken(tok, []byte("k"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetUserIDFromToken_RejectsOtherAlgorithms(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject: "1",
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = GetUserIDFromToken(tok, []byte("k"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
