package security

import (
	"fmt"
	"time"

	"jobboard/internal/common"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

// TokenManager signs and verifies the stateless session tokens. The
// secret is injected rather than read from ambient process state so
// tests can supply fixtures.
type TokenManager struct {
	auth   *jwtauth.JWTAuth
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{
		auth:   jwtauth.New("HS256", secret, nil),
		secret: secret,
		ttl:    ttl,
	}
}

// TTL returns the lifetime stamped into issued tokens.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token carrying the user identifier. The secret is
// checked at call time, not assumed.
func (m *TokenManager) Issue(userID string) (string, error) {
	if len(m.secret) == 0 {
		return "", common.ErrConfig
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(m.ttl).Unix(),
	}
	_, tokenString, err := m.auth.Encode(claims)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify checks signature and expiry and returns the user identifier
// carried by the token. Expired tokens are distinguished from malformed
// or mis-signed ones so callers can map statuses correctly.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	if len(m.secret) == 0 {
		return "", common.ErrConfig
	}
	token, err := jwtauth.VerifyToken(m.auth, tokenString)
	if err != nil {
		if jwtauth.ErrorReason(err) == jwtauth.ErrExpired {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}
	raw, ok := token.Get("user_id")
	if !ok {
		return "", common.ErrInvalidToken
	}
	userID, ok := raw.(string)
	if !ok || userID == "" {
		return "", common.ErrInvalidToken
	}
	return userID, nil
}
