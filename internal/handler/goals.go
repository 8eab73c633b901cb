package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wealthvault/backend/internal/model"
	"github.com/wealthvault/backend/internal/service"
)

type GoalHandler struct {
	svc *service.GoalService
}

func NewGoalHandler(svc *service.GoalService) *GoalHandler {
	return &GoalHandler{svc: svc}
}

// Create godoc
// @Summary Create a savings goal
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.GoalCreateRequest true "Goal fields"
// @Success 200 {object} model.Goal
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	var req model.GoalCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	goal, err := h.svc.Create(c.Request.Context(), GetIdentity(c).ID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// List godoc
// @Summary List the user's savings goals
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Goal
// @Failure 401 {object} model.ErrorResponse
// @Router /api/goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	goals, err := h.svc.List(c.Request.Context(), GetIdentity(c).ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

// Update godoc
// @Summary Partially update one of the user's goals
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Goal id"
// @Param request body model.GoalUpdateRequest true "Fields to change"
// @Success 200 {object} model.Goal
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/goals/{id} [patch]
func (h *GoalHandler) Update(c *gin.Context) {
	goalID, ok := pathID(c)
	if !ok {
		return
	}

	var req model.GoalUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	goal, err := h.svc.Update(c.Request.Context(), GetIdentity(c).ID, goalID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// Delete godoc
// @Summary Delete one of the user's goals
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Goal id"
// @Success 200 {object} model.OKResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/goals/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	goalID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), GetIdentity(c).ID, goalID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.OKResponse{OK: true, Message: "Goal deleted"})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
