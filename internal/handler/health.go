package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wealthvault/backend/internal/model"
)

// Ping godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} model.PingResponse
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, model.PingResponse{Message: "pong"})
}

// Root godoc
// @Summary API root
// @Tags health
// @Produce json
// @Success 200 {object} model.RootResponse
// @Router / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, model.RootResponse{OK: true, Message: "API running"})
}

// Portfolio godoc
// @Summary Portfolio holdings (stub)
// @Tags portfolio
// @Produce json
// @Success 200 {object} model.PortfolioResponse
// @Router /api/portfolio [get]
func Portfolio(c *gin.Context) {
	c.JSON(http.StatusOK, model.PortfolioResponse{
		Message:  "Portfolio endpoint working",
		Holdings: []string{},
	})
}

// MarketStatus godoc
// @Summary Market status (stub)
// @Tags market
// @Produce json
// @Success 200 {object} model.MarketStatusResponse
// @Router /api/market/status [get]
func MarketStatus(c *gin.Context) {
	c.JSON(http.StatusOK, model.MarketStatusResponse{OK: true, Market: "stub"})
}
