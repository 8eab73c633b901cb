// Package token implements the two signed-token codecs used by the auth
// layer: short-lived access tokens carrying a user id, and purpose-scoped
// password-reset tokens carrying an email. Each codec is constructed with
// its own key material and holds no mutable state, so a single instance is
// safe for concurrent use.
package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalid covers malformed tokens and bad signatures. The two are
	// deliberately not distinguishable by callers; the underlying parse
	// error stays wrapped for logging.
	ErrInvalid = errors.New("invalid token")

	// ErrExpired means the signature checked out but the token is past
	// its validity window.
	ErrExpired = errors.New("token expired")

	// ErrBadAlgorithm is returned at construction for anything other
	// than an HMAC signing method.
	ErrBadAlgorithm = errors.New("unsupported signing algorithm")
)

func hmacMethod(alg string) (*jwt.SigningMethodHMAC, error) {
	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok || method == nil {
		return nil, ErrBadAlgorithm
	}
	return method, nil
}
