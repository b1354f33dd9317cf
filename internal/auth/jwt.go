// Package auth issues and parses the bearer JWTs cmd/scoreserver's
// middleware requires on POST /v1/score, mirroring common/jwts/jwt.go.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ClientClaims identifies the caller of the scoring API.
type ClientClaims struct {
	ClientID string `json:"clientID"`
	jwt.RegisteredClaims
}

// IssueToken signs a ClientClaims for clientID, expiring after ttl.
func IssueToken(clientID, secret string, ttl time.Duration) (string, error) {
	claims := &ClientClaims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies token and returns the embedded client ID.
func ParseToken(token, secret string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &ClientClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(*ClientClaims)
	if !ok || !parsed.Valid {
		return "", errors.New("token not valid")
	}
	return claims.ClientID, nil
}
