package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/peiwenliu/sharecircle/internal/domain/apperr"
)

// Manager signs and verifies the HS256 session tokens stored on user
// documents.
type Manager struct {
	secret []byte
	expiry time.Duration
}

func NewManager(secret string, expiry time.Duration) *Manager {
	return &Manager{secret: []byte(secret), expiry: expiry}
}

// Sign issues a token for userID with the configured expiry.
func (m *Manager) Sign(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the token signature and reports whether the token has
// expired. Expiry is checked here rather than during parsing because the
// session-extend and logout flows accept expired tokens; the caller decides
// whether expired is fatal.
func (m *Manager) Parse(tokenStr string) (userID string, expired bool, err error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	claims := &jwt.RegisteredClaims{}
	token, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", false, apperr.Wrap(apperr.KindAuth, "invalid token", err)
	}
	if claims.Subject == "" {
		return "", false, apperr.Auth("invalid token")
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		expired = true
	}
	return claims.Subject, expired, nil
}
