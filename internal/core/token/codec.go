// Package token signs and verifies the stateless session credential.
// Verification is a pure computation over the process-wide secret, safe to
// run concurrently for any number of requests.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/flowiq/flowiq/internal/core/domain"
)

// Lifetime is how long an issued session stays valid.
const Lifetime = 7 * 24 * time.Hour

// Claims is the session payload embedded in the signed token.
type Claims struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256-signed session tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl == 0 {
		ttl = Lifetime
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue mints a signed token for the user, expiring ttl from now.
func (c *Codec) Issue(userID, email string, role domain.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks the signature and expiry. It returns nil on any failure;
// forged, malformed, and expired tokens are indistinguishable to callers,
// which must treat nil uniformly as "no session".
func (c *Codec) Verify(raw string) *Claims {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}
	return claims
}

// TTL exposes the configured lifetime so cookie max-age can match it.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}
