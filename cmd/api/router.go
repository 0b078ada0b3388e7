package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"labsite-backend/internal/shared/middleware"
	"labsite-backend/pkg/container"
)

// SetupRouter wires every route. Reads are public; mutations require an
// admin token.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupProjectRoutes(v1, c)
		setupTeamRoutes(v1, c)
		setupNewsRoutes(v1, c)
		setupPartnerRoutes(v1, c)
		setupInitiativeRoutes(v1, c)
		setupUploadRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
	}
}

// ========================================
// PROJECT ROUTES
// ========================================
func setupProjectRoutes(v1 *gin.RouterGroup, c *container.Container) {
	projects := v1.Group("/projects")
	{
		projects.GET("", c.ProjectHandler.ListProjects)
		projects.GET("/:idOrSlug", c.ProjectHandler.GetProject)
	}

	adminProjects := v1.Group("/projects")
	adminProjects.Use(middleware.Auth(c.JWTManager))
	{
		adminProjects.POST("", c.ProjectHandler.CreateProject)
		adminProjects.PUT("/:idOrSlug", c.ProjectHandler.UpdateProject)
		adminProjects.DELETE("/:idOrSlug", c.ProjectHandler.DeleteProject)
	}
}

// ========================================
// TEAM ROUTES
// ========================================
func setupTeamRoutes(v1 *gin.RouterGroup, c *container.Container) {
	members := v1.Group("/team-members")
	{
		members.GET("", c.TeamHandler.ListMembers)
		members.GET("/:id", c.TeamHandler.GetMember)
	}

	adminMembers := v1.Group("/team-members")
	adminMembers.Use(middleware.Auth(c.JWTManager))
	{
		adminMembers.POST("", c.TeamHandler.CreateMember)
		adminMembers.PUT("/:id", c.TeamHandler.UpdateMember)
		adminMembers.DELETE("/:id", c.TeamHandler.DeleteMember)
	}
}

// ========================================
// NEWS ROUTES
// ========================================
func setupNewsRoutes(v1 *gin.RouterGroup, c *container.Container) {
	newsItems := v1.Group("/news")
	{
		newsItems.GET("", c.NewsHandler.ListNews)
		newsItems.GET("/:idOrSlug", c.NewsHandler.GetNews)
	}

	adminNews := v1.Group("/news")
	adminNews.Use(middleware.Auth(c.JWTManager))
	{
		adminNews.POST("", c.NewsHandler.CreateNews)
		adminNews.PUT("/:idOrSlug", c.NewsHandler.UpdateNews)
		adminNews.DELETE("/:idOrSlug", c.NewsHandler.DeleteNews)
	}
}

// ========================================
// PARTNER ROUTES
// ========================================
func setupPartnerRoutes(v1 *gin.RouterGroup, c *container.Container) {
	partners := v1.Group("/partners")
	{
		partners.GET("", c.PartnerHandler.ListPartners)
		partners.GET("/:idOrSlug", c.PartnerHandler.GetPartner)
	}

	adminPartners := v1.Group("/partners")
	adminPartners.Use(middleware.Auth(c.JWTManager))
	{
		adminPartners.POST("", c.PartnerHandler.CreatePartner)
		adminPartners.PUT("/:idOrSlug", c.PartnerHandler.UpdatePartner)
		adminPartners.DELETE("/:idOrSlug", c.PartnerHandler.DeletePartner)
	}
}

// ========================================
// INITIATIVE ROUTES
// ========================================
func setupInitiativeRoutes(v1 *gin.RouterGroup, c *container.Container) {
	initiatives := v1.Group("/initiatives")
	{
		initiatives.GET("", c.InitiativeHandler.ListInitiatives)
		initiatives.GET("/:idOrSlug", c.InitiativeHandler.GetInitiative)
	}

	adminInitiatives := v1.Group("/initiatives")
	adminInitiatives.Use(middleware.Auth(c.JWTManager))
	{
		adminInitiatives.POST("", c.InitiativeHandler.CreateInitiative)
		adminInitiatives.PUT("/:idOrSlug", c.InitiativeHandler.UpdateInitiative)
		adminInitiatives.DELETE("/:idOrSlug", c.InitiativeHandler.DeleteInitiative)
	}
}

// ========================================
// UPLOAD ROUTES
// ========================================
func setupUploadRoutes(v1 *gin.RouterGroup, c *container.Container) {
	uploads := v1.Group("/uploads")
	uploads.Use(middleware.Auth(c.JWTManager))
	{
		uploads.POST("", c.UploadHandler.UploadFile)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Redis being down only degrades caching, not availability.
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
