package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wealthvault/backend/internal/service"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary godoc
// @Summary Monthly income/expense/investment summary
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param month query int false "Month 1-12 (defaults to current)"
// @Param year query int false "Year (defaults to current)"
// @Success 200 {object} model.DashboardSummary
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	month, ok := intQuery(c, "month")
	if !ok {
		return
	}
	year, ok := intQuery(c, "year")
	if !ok {
		return
	}

	summary := h.svc.Summary(GetIdentity(c).ID, month, year, time.Now())
	c.JSON(http.StatusOK, summary)
}

// SpendingByCategory godoc
// @Summary Expense totals bucketed by category
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param from_date query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param to_date query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {array} model.CategorySpending
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/analytics/spending-by-category [get]
func (h *DashboardHandler) SpendingByCategory(c *gin.Context) {
	from, ok := dateQuery(c, "from_date")
	if !ok {
		return
	}
	to, ok := dateQuery(c, "to_date")
	if !ok {
		return
	}

	spending := h.svc.SpendingByCategory(GetIdentity(c).ID, from, to)
	c.JSON(http.StatusOK, spending)
}

func intQuery(c *gin.Context, name string) (int, bool) {
	val := c.Query(name)
	if val == "" {
		return 0, true
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return parsed, true
}
