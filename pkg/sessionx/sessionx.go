// Package sessionx signs and verifies the per-view session payload that
// travels between the static render and the live connection handshake.
// The payload itself is opaque; signing only guarantees it was produced
// by this server.
package sessionx

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signer signs session payloads as HS256 JWTs.
type Signer struct {
	secretKey []byte
	ttl       time.Duration
	issuer    string
}

// NewSigner creates a session signer.
func NewSigner(secretKey string, ttl time.Duration, issuer string) *Signer {
	if ttl == 0 {
		ttl = 2 * time.Hour
	}
	if issuer == "" {
		issuer = "livex"
	}

	return &Signer{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		issuer:    issuer,
	}
}

// sessionClaims carries the opaque session payload plus standard claims.
type sessionClaims struct {
	Session map[string]interface{} `json:"session"`
	jwt.RegisteredClaims
}

// Sign encodes the session payload into a signed token.
func (s *Signer) Sign(session map[string]interface{}) (string, error) {
	now := time.Now()

	claims := sessionClaims{
		Session: session,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", ErrSignFailed().WithDetail("error", err.Error())
	}
	return signed, nil
}

// Verify validates a token and returns the session payload it carries.
func (s *Signer) Verify(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		// Verify the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, ErrVerifyFailed().WithDetail("error", err.Error())
	}

	if !token.Valid {
		return nil, ErrVerifyFailed().WithDetail("error", "token is invalid")
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok {
		return nil, ErrVerifyFailed().WithDetail("error", "invalid claims type")
	}

	return claims.Session, nil
}
