package app

import (
	"skillpath_backend/docs"
	"skillpath_backend/internal/config"
	"skillpath_backend/internal/middleware"
	"skillpath_backend/internal/model"
	"skillpath_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	router.GET("/", c.health.Live)

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// Authenticated routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/me", c.auth.Me)

		users := authGroup.Group("/users")
		{
			users.PUT("/profile", c.user.UpdateProfile)
			users.PUT("/preferences", c.user.UpdatePreferences)
			users.PUT("/password", c.user.ChangePassword)
			users.POST("/avatar", c.user.UploadAvatar)
			users.POST("/goals", c.user.AddGoal)
			users.PUT("/goals/:goalId", c.user.UpdateGoalStatus)
		}

		roadmaps := authGroup.Group("/roadmaps")
		{
			roadmaps.POST("", c.roadmap.Create)
			roadmaps.GET("", c.roadmap.List)
			roadmaps.GET("/:id", c.roadmap.Get)
			roadmaps.PUT("/:id", c.roadmap.Update)
			roadmaps.PUT("/:id/status", c.roadmap.UpdateStatus)
			roadmaps.DELETE("/:id", c.roadmap.Delete)
			roadmaps.POST("/:id/topics/:topicId/complete", c.roadmap.CompleteTopic)
			roadmaps.GET("/:id/quizzes", c.quiz.ListByRoadmap)
			roadmaps.GET("/:id/progress", c.progress.Get)
			roadmaps.GET("/:id/analytics", c.progress.Analytics)
		}

		quizzes := authGroup.Group("/quizzes")
		{
			quizzes.POST("", c.quiz.Create)
			quizzes.GET("/:id", c.quiz.Get)
			quizzes.PUT("/:id/status", c.quiz.UpdateStatus)
			quizzes.DELETE("/:id", c.quiz.Delete)
			quizzes.POST("/:id/submit", c.quiz.Submit)
		}

		authGroup.GET("/progress", c.progress.List)

		admin := authGroup.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.RoleAdmin))
		{
			admin.GET("/users", c.user.ListUsers)
		}
	}
}
