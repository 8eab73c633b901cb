package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/wealthvault/backend/internal/config"
	"github.com/wealthvault/backend/internal/model"
)

type fakeUserStore struct {
	users  map[int64]*model.User
	nextID int64
	down   bool // simulate an unreachable database
}

var errStoreDown = errors.New("store down")

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*model.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, name, email, passwordHash string) (*model.User, error) {
	if f.down {
		return nil, errStoreDown
	}
	for _, u := range f.users {
		if u.Email == email {
			return nil, errors.New("duplicate key value violates unique constraint")
		}
	}
	f.nextID++
	user := &model.User{
		ID:           f.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserStore) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	if f.down {
		return nil, errStoreDown
	}
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserStore) FindUserByID(_ context.Context, id int64) (*model.User, error) {
	if f.down {
		return nil, errStoreDown
	}
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserStore) UpdatePasswordHash(_ context.Context, id int64, passwordHash string) error {
	if f.down {
		return errStoreDown
	}
	u, ok := f.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserStore) ListUsers(_ context.Context) ([]model.User, error) {
	if f.down {
		return nil, errStoreDown
	}
	out := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		SecretKey:          "test-secret",
		Algorithm:          "HS256",
		AccessTokenMinutes: 60,
		ResetTokenMinutes:  30,
		DevAdminToken:      "admin-token",
	}
}

func newTestAuthService(t *testing.T, users UserStore) *AuthService {
	t.Helper()
	svc, err := NewAuthService(users, testAuthConfig(), "http://localhost:5173")
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return svc
}

func TestAuthServiceRequiresSecret(t *testing.T) {
	cfg := testAuthConfig()
	cfg.SecretKey = ""
	if _, err := NewAuthService(newFakeUserStore(), cfg, ""); !errors.Is(err, ErrMisconfigured) {
		t.Fatalf("expected ErrMisconfigured, got %v", err)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserStore()
	svc := newTestAuthService(t, users)

	tokenStr, err := svc.Register(ctx, "Alice", "alice@example.com", "password1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if tokenStr == "" {
		t.Fatal("expected access token")
	}

	if _, err := svc.Login(ctx, "alice@example.com", "password1"); err != nil {
		t.Fatalf("login with correct password: %v", err)
	}

	if _, err := svc.Login(ctx, "alice@example.com", "wrong"); err != ErrUnauthenticated {
		t.Fatalf("wrong password: expected ErrUnauthenticated, got %v", err)
	}

	// Unknown email must fail identically to a wrong password.
	if _, err := svc.Login(ctx, "nobody@example.com", "password1"); err != ErrUnauthenticated {
		t.Fatalf("unknown email: expected ErrUnauthenticated, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, newFakeUserStore())

	if _, err := svc.Register(ctx, "Alice", "alice@example.com", "password1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, "Alice Again", "alice@example.com", "password2"); err != ErrConflict {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, newFakeUserStore())

	link, mins, err := svc.ForgotPassword(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("forgot-password: %v", err)
	}
	if link != "" || mins != 0 {
		t.Fatalf("expected no link for unknown email, got %q", link)
	}
}

func TestForgotAndResetPassword(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserStore()
	svc := newTestAuthService(t, users)

	if _, err := svc.Register(ctx, "Alice", "alice@example.com", "oldpassword"); err != nil {
		t.Fatalf("register: %v", err)
	}

	link, mins, err := svc.ForgotPassword(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("forgot-password: %v", err)
	}
	if mins != 30 {
		t.Fatalf("expected 30 minute window, got %d", mins)
	}
	marker := "/reset-password?token="
	idx := strings.Index(link, marker)
	if idx < 0 {
		t.Fatalf("reset link missing token: %q", link)
	}
	resetToken := link[idx+len(marker):]

	if err := svc.ResetPassword(ctx, resetToken, "newpassword"); err != nil {
		t.Fatalf("reset-password: %v", err)
	}

	if _, err := svc.Login(ctx, "alice@example.com", "newpassword"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, err := svc.Login(ctx, "alice@example.com", "oldpassword"); err != ErrUnauthenticated {
		t.Fatalf("old password should be rejected, got %v", err)
	}

	// Not consumed on use: the same token resets again until it ages out.
	if err := svc.ResetPassword(ctx, resetToken, "thirdpassword"); err != nil {
		t.Fatalf("second use of reset token: %v", err)
	}
}

func TestResetPasswordBadToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, newFakeUserStore())

	if err := svc.ResetPassword(ctx, "garbage-token", "newpassword"); err != ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestResetPasswordUserDeleted(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserStore()
	svc := newTestAuthService(t, users)

	if _, err := svc.Register(ctx, "Alice", "alice@example.com", "password1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	link, _, err := svc.ForgotPassword(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("forgot-password: %v", err)
	}
	resetToken := link[strings.Index(link, "token=")+len("token="):]

	delete(users.users, 1)

	if err := svc.ResetPassword(ctx, resetToken, "newpassword"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
