package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessCodec issues and verifies the stateless bearer tokens handed out
// at login and registration. Validity is purely cryptographic: a token
// dies at its exp claim or when the signing secret rotates.
type AccessCodec struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
}

func NewAccessCodec(secret []byte, alg string, ttl time.Duration) (*AccessCodec, error) {
	method, err := hmacMethod(alg)
	if err != nil {
		return nil, fmt.Errorf("access codec: %w", err)
	}
	return &AccessCodec{secret: secret, method: method, ttl: ttl}, nil
}

// Issue signs a token whose subject is the stringified user id.
func (c *AccessCodec) Issue(subject string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
}

// Verify checks signature and expiry against the supplied clock and
// returns the subject. Expiry surfaces as ErrExpired; every other failure
// collapses into ErrInvalid.
func (c *AccessCodec) Verify(tokenStr string, now time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, c.keyFunc,
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithValidMethods([]string{c.method.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !parsed.Valid {
		return "", ErrInvalid
	}
	return claims.Subject, nil
}

func (c *AccessCodec) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrInvalid
	}
	return c.secret, nil
}
