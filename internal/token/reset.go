package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// resetPurpose scopes reset tokens away from access tokens. It feeds the
// key derivation and is embedded as a claim, so a reset token can never
// verify as an access token (or vice versa) even though both codecs are
// configured from the same SECRET_KEY.
const resetPurpose = "password-reset"

type resetClaims struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// ResetCodec issues and verifies password-reset tokens. Tokens carry only
// the email and their issuance time; the maximum age is supplied at
// verification from current configuration, so shrinking the configured
// window retroactively shortens the life of already-issued tokens.
type ResetCodec struct {
	key    []byte
	method *jwt.SigningMethodHMAC
}

func NewResetCodec(secret []byte, alg string) (*ResetCodec, error) {
	method, err := hmacMethod(alg)
	if err != nil {
		return nil, fmt.Errorf("reset codec: %w", err)
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(resetPurpose))
	return &ResetCodec{key: mac.Sum(nil), method: method}, nil
}

func (c *ResetCodec) Issue(email string, now time.Time) (string, error) {
	claims := resetClaims{
		Email:   email,
		Purpose: resetPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(c.method, claims).SignedString(c.key)
}

// Verify returns the email carried by a well-signed token no older than
// maxAge. Overage surfaces as ErrExpired; signature, format, purpose, and
// missing-claim failures all collapse into ErrInvalid.
func (c *ResetCodec) Verify(tokenStr string, maxAge time.Duration, now time.Time) (string, error) {
	claims := &resetClaims{}
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
	if !parsed.Valid || claims.Purpose != resetPurpose || claims.Email == "" {
		return "", ErrInvalid
	}
	if claims.IssuedAt == nil {
		return "", ErrInvalid
	}
	if now.Sub(claims.IssuedAt.Time) > maxAge {
		return "", ErrExpired
	}
	return claims.Email, nil
}

func (c *ResetCodec) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrInvalid
	}
	return c.key, nil
}
