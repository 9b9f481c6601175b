package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pagewise/bookstore-api/internal/core/domain"
)

const defaultTokenTTL = 5 * time.Minute

// TokenIssuer mints signed bearer tokens from an identity snapshot. Issuance
// touches no shared state beyond reading the configured secret, so it is safe
// to call concurrently for many simultaneous logins.
type TokenIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer returns a TokenIssuer signing HS256 tokens valid for ttl.
// A non-positive ttl falls back to a short default.
func NewTokenIssuer(secret, issuer string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue builds and signs a token for the given user. Claims capture the role
// set at issuance time; later role changes do not invalidate issued tokens.
// The jti claim is freshly generated so two tokens for the same login are
// never bit-identical.
func (ti *TokenIssuer) Issue(user *domain.User) (string, error) {
	if len(ti.secret) == 0 {
		return "", fmt.Errorf("issue token: signing secret not configured")
	}

	roles := user.Roles
	if roles == nil {
		roles = []string{}
	}

	now := ti.now().UTC()
	claims := jwt.MapClaims{
		"sub":   user.Email,
		"jti":   uuid.NewString(),
		"uid":   user.ID,
		"roles": roles,
		"iss":   ti.issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(ti.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}
