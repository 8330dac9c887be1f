package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/hanz0pro/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verification failure classes. Handlers map these to distinct responses
// without leaking parser internals.
var (
	ErrMissing          = errors.New("authorization token missing")
	ErrMalformed        = errors.New("token malformed")
	ErrExpired          = errors.New("token expired")
	ErrRevoked          = errors.New("token revoked")
	ErrSignatureInvalid = errors.New("token signature invalid")
)

// AccessClaims are the claims carried by an access token. Roles are a
// snapshot taken at issuance; they are not refreshed against the database.
type AccessClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// UserID decodes the subject claim back into a user ID.
func (c *AccessClaims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid subject claim: %w", err)
	}
	return uint(id), nil
}

// HasRole reports whether the roles claim contains the given role name.
func (c *AccessClaims) HasRole(name string) bool {
	for _, r := range c.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// GenerateToken creates a signed access token for a user with the given
// role snapshot. The token ID (jti) supports later revocation.
func GenerateToken(userID uint, roles []string) (string, error) {
	now := time.Now()
	ttl := time.Duration(config.AppConfig.AccessTokenTTLMinutes) * time.Minute

	claims := AccessClaims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ParseToken verifies a token string and returns its claims, or one of the
// classified errors above.
func ParseToken(tokenString string) (*AccessClaims, error) {
	if tokenString == "" {
		return nil, ErrMissing
	}

	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignatureInvalid
		default:
			return nil, ErrMalformed
		}
	}

	if !token.Valid {
		return nil, ErrMalformed
	}

	return claims, nil
}
