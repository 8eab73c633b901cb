package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wealthvault/backend/internal/config"
	"github.com/wealthvault/backend/internal/db"
	"github.com/wealthvault/backend/internal/model"
	"github.com/wealthvault/backend/internal/token"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrNotFound        = errors.New("not found")
	ErrMisconfigured   = errors.New("auth config invalid")
)

// UserStore is the slice of the persistence layer the auth core touches.
type UserStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*model.User, error)
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUserByID(ctx context.Context, id int64) (*model.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
}

type AuthService struct {
	users       UserStore
	access      *token.AccessCodec
	reset       *token.ResetCodec
	resetMaxAge time.Duration
	resetMins   int
	frontendURL string
}

func NewAuthService(users UserStore, cfg config.AuthConfig, frontendURL string) (*AuthService, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("%w: SECRET_KEY is required", ErrMisconfigured)
	}

	access, err := token.NewAccessCodec([]byte(cfg.SecretKey), cfg.Algorithm,
		time.Duration(cfg.AccessTokenMinutes)*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMisconfigured, err)
	}

	reset, err := token.NewResetCodec([]byte(cfg.SecretKey), cfg.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMisconfigured, err)
	}

	return &AuthService{
		users:       users,
		access:      access,
		reset:       reset,
		resetMaxAge: time.Duration(cfg.ResetTokenMinutes) * time.Minute,
		resetMins:   cfg.ResetTokenMinutes,
		frontendURL: frontendURL,
	}, nil
}

// AccessCodec exposes the access-token codec to the identity resolver.
func (s *AuthService) AccessCodec() *token.AccessCodec {
	return s.access
}

// Register creates a user and logs them straight in. A duplicate email
// surfaces as ErrConflict whether it is caught by the pre-check or by the
// unique constraint under a concurrent registration.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	existing, err := s.users.FindUserByEmail(ctx, email)
	if err != nil && !db.IsNoRows(err) {
		return "", err
	}
	if existing != nil {
		return "", ErrConflict
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	user, err := s.users.CreateUser(ctx, name, email, hash)
	if err != nil {
		if isUniqueViolation(err) {
			return "", ErrConflict
		}
		return "", err
	}

	return s.access.Issue(strconv.FormatInt(user.ID, 10), time.Now())
}

// Login verifies credentials and issues an access token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			return "", ErrUnauthenticated
		}
		return "", err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return "", ErrUnauthenticated
	}

	return s.access.Issue(strconv.FormatInt(user.ID, 10), time.Now())
}

// ForgotPassword issues a reset token when the email has an account. The
// returned link is empty for unknown emails; the handler sends the same
// generic message either way so the endpoint cannot be used to enumerate
// accounts. The link is returned directly instead of emailed (dev mode).
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, int, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			return "", 0, nil
		}
		return "", 0, err
	}

	resetToken, err := s.reset.Issue(user.Email, time.Now())
	if err != nil {
		return "", 0, err
	}

	return s.frontendURL + "/reset-password?token=" + resetToken, s.resetMins, nil
}

// ResetPassword overwrites the password hash of the account named by a
// valid reset token. Tokens are not consumed on use; they stay valid
// until their age window lapses.
func (s *AuthService) ResetPassword(ctx context.Context, tokenStr, newPassword string) error {
	email, err := s.reset.Verify(tokenStr, s.resetMaxAge, time.Now())
	if err != nil {
		return ErrUnauthenticated
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return err
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.users.UpdatePasswordHash(ctx, user.ID, hash)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
