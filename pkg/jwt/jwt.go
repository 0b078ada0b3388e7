package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload for an authenticated admin session.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager handles JWT signing and verification.
type Manager struct {
	secret string
	expiry time.Duration
}

// NewManager creates a JWT manager. expiry bounds the session lifetime.
func NewManager(secret string, expiry time.Duration) *Manager {
	return &Manager{secret: secret, expiry: expiry}
}

// GenerateToken issues a signed session token for username.
func (m *Manager) GenerateToken(username string) (string, error) {
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// VerifyToken parses and validates a token, returning its claims.
func (m *Manager) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
