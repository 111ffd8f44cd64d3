package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/segurosapi/auth-service/internal/core/ports"
)

const defaultLifetime = 24 * time.Hour

// JWTManager issues and validates HS256-signed bearer tokens. Key, issuer,
// and audience must match between issuance and validation; changing any of
// them invalidates every outstanding token.
type JWTManager struct {
	secret   []byte
	issuer   string
	audience string
	lifetime time.Duration
}

func NewJWTManager(secret, issuer, audience string, lifetime time.Duration) *JWTManager {
	if lifetime <= 0 {
		lifetime = defaultLifetime
	}
	return &JWTManager{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		lifetime: lifetime,
	}
}

var _ ports.TokenIssuer = (*JWTManager)(nil)

// Claims is the token payload: registered claims plus the email and role
// the account carried at issuance time.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a token for the account. The jti is a fresh UUID recorded for
// replay analysis; expiration is issued-at plus the configured lifetime.
func (m *JWTManager) Issue(accountID int64, email, roleName string) (*ports.IssuedToken, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(m.lifetime)
	tokenID := uuid.NewString()

	claims := Claims{
		Email: email,
		Role:  roleName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(accountID, 10),
			ID:        tokenID,
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &ports.IssuedToken{Token: signed, TokenID: tokenID, ExpiresAt: expiresAt}, nil
}

// Validate parses and verifies a token string, returning its claims. It
// rejects wrong signing algorithms, bad signatures, expired tokens, and
// issuer/audience mismatches.
func (m *JWTManager) Validate(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(t *jwt.Token) (any, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return m.secret, nil
		},
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// AccountID converts the sub claim back to the account id it was issued for.
func (c *Claims) AccountID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}
