// Package jwt issues and checks the dashboard session tokens. A token is
// an HS256 JWT whose subject is the admin user ID; lifetime and issuer are
// fixed here so every caller mints identical sessions.
package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const (
	issuer = "odhav-core"

	// SessionTTL is how long a dashboard login stays valid.
	SessionTTL = 7 * 24 * time.Hour

	defaultSecret = "odhav-core-secret-change-me"
)

var secret = []byte(defaultSecret)

var ErrInvalidToken = errors.New("invalid session token")

// SetSecret configures the signing secret (call once on startup).
func SetSecret(s string) {
	if s != "" {
		secret = []byte(s)
	}
}

// Claims is the session payload; the user ID rides in the subject.
type Claims struct {
	jwtlib.RegisteredClaims
}

// UserID returns the admin user the session belongs to.
func (c *Claims) UserID() string { return c.Subject }

// Sign mints a session token for the given user ID.
func Sign(userID string) (string, error) {
	return signWithTTL(userID, SessionTTL)
}

func signWithTTL(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			NotBefore: jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(secret)
}

// Parse checks a session token's signature, lifetime and issuer.
func Parse(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(*jwtlib.Token) (interface{}, error) { return secret, nil },
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(issuer),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
