// Package auth mints and verifies the HS256 access tokens handed out on
// register and login.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/deathline/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken signs a token whose subject is userID and which expires
// after validity.
func GenerateToken(userID int64, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
	})

	return token.SignedString(secretKey)
}

// GetUserIDFromToken validates tokenString and returns its subject.
// Any parse, signature or expiry failure yields common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (int64, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return 0, common.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject", common.ErrInvalidToken)
	}

	return userID, nil
}
