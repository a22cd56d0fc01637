package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// AlgHS256 is the HMAC256 algorithm
const AlgHS256 = "HS256"

const (
	// TokenTypeAccess a access token
	TokenTypeAccess string = "access_token"

	// TokenTypeRefresh a refresh token
	TokenTypeRefresh string = "refresh_token"
)

// Claims our JWT can have
type Claims struct {
	TokenType string   `json:"tkt,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	gojwt.RegisteredClaims
}

// HasRole checks whether the claims grant role
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Verify checks the functional requirements of the claims
func (c *Claims) Verify(tokenType string) error {
	if tokenType != "" && c.TokenType != tokenType {
		return fmt.Errorf("wrong token type")
	}

	if c.Subject == "" {
		return errors.New("token has no subject")
	}

	return nil
}

// New constructs claims for a subject that expire after ttl
func New(subject string, tokenType string, roles []string, ttl time.Duration) Claims {
	now := time.Now()
	return Claims{
		TokenType: tokenType,
		Roles:     roles,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// Sign returns the signed token
func Sign(claims Claims, secret string) (string, error) {
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verify checks if token is valid and returns its claims
func Verify(token string, tokenType string, secret string) (*Claims, error) {
	if token == "" {
		return nil, errors.New("token is empty")
	}

	claims := Claims{}
	parsed, err := gojwt.ParseWithClaims(token, &claims, func(t *gojwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, gojwt.WithValidMethods([]string{AlgHS256}))
	if err != nil {
		return nil, err
	}

	if !parsed.Valid {
		return nil, errors.New("token is invalid")
	}

	err = claims.Verify(tokenType)
	if err != nil {
		return nil, err
	}

	return &claims, nil
}
