package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/wealthvault/backend/internal/config"
	"github.com/wealthvault/backend/internal/db"
	"github.com/wealthvault/backend/internal/handler"
	"github.com/wealthvault/backend/internal/service"
	"github.com/wealthvault/backend/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	repo := &db.Postgres{Pool: pool}
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}

	authService, err := service.NewAuthService(repo, cfg.Auth, cfg.App.FrontendURL)
	if err != nil {
		log.Fatalf("auth service: %v", err)
	}
	resolver := service.NewIdentityResolver(repo, authService.AccessCodec(), cfg.Auth.DevAdminToken)
	userService := service.NewUserService(repo)
	goalService := service.NewGoalService(repo, repo)
	txStore := store.NewTransactionStore()
	dashboardService := service.NewDashboardService(txStore)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	goalHandler := handler.NewGoalHandler(goalService)
	adminHandler := handler.NewAdminHandler(goalService)
	txHandler := handler.NewTransactionHandler(txStore)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	router := gin.Default()
	router.Use(handler.CORSMiddleware(cfg.App.CORSOrigins))

	router.GET("/", handler.Root)
	router.GET("/ping", handler.Ping)

	api := router.Group(cfg.App.APIPrefix)

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/reset-password", authHandler.ResetPassword)
	}

	api.GET("/portfolio", handler.Portfolio)
	api.GET("/market/status", handler.MarketStatus)

	authed := api.Group("")
	authed.Use(handler.AuthMiddleware(resolver))
	{
		authed.GET("/users/me", userHandler.Me)

		authed.POST("/goals", goalHandler.Create)
		authed.GET("/goals", goalHandler.List)
		authed.PATCH("/goals/:id", goalHandler.Update)
		authed.DELETE("/goals/:id", goalHandler.Delete)

		authed.GET("/transactions", txHandler.List)
		authed.POST("/transactions", txHandler.Create)
		authed.DELETE("/transactions/:id", txHandler.Delete)

		authed.GET("/dashboard/summary", dashboardHandler.Summary)
		authed.GET("/analytics/spending-by-category", dashboardHandler.SpendingByCategory)

		admin := authed.Group("/admin")
		admin.Use(handler.AdminMiddleware())
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/users/:id/goals", adminHandler.ListUserGoals)
			admin.POST("/users/:id/goals", adminHandler.CreateUserGoal)
			admin.PATCH("/goals/:id", adminHandler.UpdateGoal)
			admin.DELETE("/goals/:id", adminHandler.DeleteGoal)
		}
	}

	log.Printf("%s listening on :%s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
