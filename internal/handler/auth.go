package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wealthvault/backend/internal/model"
	"github.com/wealthvault/backend/internal/service"
)

const genericResetMessage = "If the email exists, a reset link will be sent."

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Name, email, password"
// @Success 200 {object} model.TokenResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	accessToken, err := h.svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TokenResponse{AccessToken: accessToken, TokenType: "bearer"})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Email and password"
// @Success 200 {object} model.TokenResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	accessToken, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrUnauthenticated {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TokenResponse{AccessToken: accessToken, TokenType: "bearer"})
}

// ForgotPassword godoc
// @Summary Request a password-reset link
// @Description Always answers with the same message whether or not the
// email has an account. In dev mode the reset link is returned in the
// response instead of being emailed.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.ForgotPasswordRequest true "Email"
// @Success 200 {object} model.ForgotPasswordResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req model.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	resetLink, expiresMinutes, err := h.svc.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if resetLink == "" {
		c.JSON(http.StatusOK, model.ForgotPasswordResponse{OK: true, Message: genericResetMessage})
		return
	}

	c.JSON(http.StatusOK, model.ForgotPasswordResponse{
		OK:                  true,
		Message:             "Reset link generated (dev mode).",
		ResetLink:           resetLink,
		TokenExpiresMinutes: expiresMinutes,
	})
}

// ResetPassword godoc
// @Summary Set a new password using a reset token
// @Description Reset tokens stay valid until their age window lapses;
// they are not consumed on first use.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} model.OKResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.svc.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.OKResponse{OK: true, Message: "Password updated successfully"})
}
