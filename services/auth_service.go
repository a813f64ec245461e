package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken marks a missing, malformed, or expired bearer token.
var ErrInvalidToken = errors.New("invalid or expired token")

// tokenLifetime matches the desk shift: tokens are reissued on login.
const tokenLifetime = 120 * time.Minute

// JWTService issues and verifies the signed tokens used for admin auth.
type JWTService struct {
	Secret []byte
	Issuer string
}

func NewJWTService(secret, issuer string) *JWTService {
	return &JWTService{Secret: []byte(secret), Issuer: issuer}
}

// IssueToken signs a token carrying the admin account ID as subject,
// expiring after 120 minutes.
func (s *JWTService) IssueToken(adminID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   adminID,
		Issuer:    s.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the signature and expiry and returns the admin
// account ID stored in the subject claim.
func (s *JWTService) ParseToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
