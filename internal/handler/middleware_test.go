package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/wealthvault/backend/internal/model"
	"github.com/wealthvault/backend/internal/service"
	"github.com/wealthvault/backend/internal/token"
)

type stubUserStore struct {
	user *model.User
}

func (s *stubUserStore) CreateUser(context.Context, string, string, string) (*model.User, error) {
	return nil, pgx.ErrNoRows
}

func (s *stubUserStore) FindUserByEmail(context.Context, string) (*model.User, error) {
	return nil, pgx.ErrNoRows
}

func (s *stubUserStore) FindUserByID(_ context.Context, id int64) (*model.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubUserStore) UpdatePasswordHash(context.Context, int64, string) error {
	return nil
}

func newTestRouter(t *testing.T, users service.UserStore) (*gin.Engine, *token.AccessCodec) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec, err := token.NewAccessCodec([]byte("test-secret"), "HS256", time.Hour)
	if err != nil {
		t.Fatalf("codec: %v", err)
	}
	resolver := service.NewIdentityResolver(users, codec, "admin-token")

	r := gin.New()
	authed := r.Group("")
	authed.Use(AuthMiddleware(resolver))
	authed.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": GetIdentity(c).Email})
	})

	admin := authed.Group("/admin")
	admin.Use(AdminMiddleware())
	admin.GET("/check", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r, codec
}

func doGet(r *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r, _ := newTestRouter(t, &stubUserStore{})

	if w := doGet(r, "/whoami", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	r, _ := newTestRouter(t, &stubUserStore{})

	if w := doGet(r, "/whoami", "garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareIssuedToken(t *testing.T) {
	user := &model.User{ID: 7, Name: "Alice", Email: "alice@example.com"}
	r, codec := newTestRouter(t, &stubUserStore{user: user})

	issued, err := codec.Issue("7", time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := doGet(r, "/whoami", issued)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	user := &model.User{ID: 7, Email: "alice@example.com"}
	r, codec := newTestRouter(t, &stubUserStore{user: user})

	issued, err := codec.Issue("7", time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if w := doGet(r, "/whoami", issued); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", w.Code)
	}
}

func TestDevOverrideBypassesLookup(t *testing.T) {
	// No user rows at all: only the override path can succeed.
	r, _ := newTestRouter(t, &stubUserStore{})

	w := doGet(r, "/whoami", "admin-token")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAdminMiddleware(t *testing.T) {
	user := &model.User{ID: 7, Email: "alice@example.com", Role: "user"}
	r, codec := newTestRouter(t, &stubUserStore{user: user})

	issued, err := codec.Issue("7", time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if w := doGet(r, "/admin/check", issued); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", w.Code)
	}

	if w := doGet(r, "/admin/check", "admin-token"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for dev admin, got %d", w.Code)
	}

	if w := doGet(r, "/admin/check", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", w.Code)
	}
}
