package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wealthvault/backend/internal/model"
	"github.com/wealthvault/backend/internal/service"
)

// AdminHandler serves the cross-user management endpoints. All routes are
// registered behind AuthMiddleware and AdminMiddleware.
type AdminHandler struct {
	svc *service.GoalService
}

func NewAdminHandler(svc *service.GoalService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.UserResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.AdminListUsers(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]model.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, model.NewUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

// ListUserGoals godoc
// @Summary List a user's goals
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 200 {array} model.Goal
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/admin/users/{id}/goals [get]
func (h *AdminHandler) ListUserGoals(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}

	goals, err := h.svc.AdminListGoals(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

// CreateUserGoal godoc
// @Summary Create a goal on behalf of a user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Param request body model.GoalCreateRequest true "Goal fields"
// @Success 200 {object} model.Goal
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/admin/users/{id}/goals [post]
func (h *AdminHandler) CreateUserGoal(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}

	var req model.GoalCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	goal, err := h.svc.AdminCreateGoal(c.Request.Context(), userID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// UpdateGoal godoc
// @Summary Update any goal by id
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Goal id"
// @Param request body model.GoalUpdateRequest true "Fields to change"
// @Success 200 {object} model.Goal
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/admin/goals/{id} [patch]
func (h *AdminHandler) UpdateGoal(c *gin.Context) {
	goalID, ok := pathID(c)
	if !ok {
		return
	}

	var req model.GoalUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	goal, err := h.svc.AdminUpdateGoal(c.Request.Context(), goalID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// DeleteGoal godoc
// @Summary Delete any goal by id
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Goal id"
// @Success 200 {object} model.OKResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/admin/goals/{id} [delete]
func (h *AdminHandler) DeleteGoal(c *gin.Context) {
	goalID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.AdminDeleteGoal(c.Request.Context(), goalID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.OKResponse{OK: true, Message: "Goal deleted"})
}
