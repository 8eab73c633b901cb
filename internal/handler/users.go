package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wealthvault/backend/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	identity := GetIdentity(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	profile, err := h.svc.Profile(c.Request.Context(), identity)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
