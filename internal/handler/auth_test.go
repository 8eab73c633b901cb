package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/wealthvault/backend/internal/config"
	"github.com/wealthvault/backend/internal/service"
)

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := service.NewAuthService(&stubUserStore{}, config.AuthConfig{
		SecretKey:          "test-secret",
		Algorithm:          "HS256",
		AccessTokenMinutes: 60,
		ResetTokenMinutes:  30,
	}, "http://localhost:5173")
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}

	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/forgot-password", h.ForgotPassword)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterValidation(t *testing.T) {
	r := newAuthTestRouter(t)

	cases := []string{
		`{}`,
		`{"name":"A","email":"alice@example.com","password":"password1"}`,
		`{"name":"Alice","email":"not-an-email","password":"password1"}`,
		`{"name":"Alice","email":"alice@example.com","password":"short"}`,
	}
	for _, body := range cases {
		if w := postJSON(r, "/api/auth/register", body); w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestLoginUnknownEmailIsGeneric(t *testing.T) {
	r := newAuthTestRouter(t)

	w := postJSON(r, "/api/auth/login", `{"email":"nobody@example.com","password":"password1"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["error"] != "invalid credentials" {
		t.Fatalf("expected generic message, got %q", resp["error"])
	}
}

func TestForgotPasswordUnknownEmailGenericMessage(t *testing.T) {
	r := newAuthTestRouter(t)

	w := postJSON(r, "/api/auth/forgot-password", `{"email":"nobody@example.com"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["ok"] != true {
		t.Fatal("expected ok response")
	}
	if _, has := resp["reset_link"]; has {
		t.Fatal("unknown email must not receive a reset link")
	}
}
