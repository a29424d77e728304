package app

import (
	"careerpath_backend/docs"
	"careerpath_backend/internal/config"
	"careerpath_backend/internal/middleware"
	"careerpath_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/career/profiles", c.career.Profiles)
		public.GET("/career/profile", c.career.Profile)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/auth/me", c.auth.Me)

		quiz := authGroup.Group("/quiz")
		{
			quiz.POST("/start", c.quiz.Start)
			quiz.POST("/answer", c.quiz.Answer)
			quiz.POST("/next", c.quiz.Next)
			quiz.POST("/previous", c.quiz.Previous)
			quiz.GET("/state", c.quiz.State)
		}

		career := authGroup.Group("/career")
		{
			career.GET("/suggestions", c.career.Suggestions)
			career.GET("/history", c.career.History)
		}

		skills := authGroup.Group("/skills")
		{
			skills.POST("/gap", c.skill.Analyze)
			skills.GET("/gap", c.skill.List)
			skills.GET("/gap/:id", c.skill.Get)
		}

		roadmap := authGroup.Group("/roadmap")
		{
			roadmap.POST("", c.roadmap.Generate)
			roadmap.GET("", c.roadmap.List)
			roadmap.GET("/:id", c.roadmap.Get)
			roadmap.PATCH("/:id/steps/:stepId", c.roadmap.MarkStep)
		}

		authGroup.PUT("/resume", c.resume.Save)
		authGroup.GET("/resume", c.resume.Get)

		authGroup.GET("/dashboard", c.dashboard.Overview)

		authGroup.GET("/user/profile", c.user.GetProfile)
		authGroup.PUT("/user/profile", c.user.UpdateProfile)
		authGroup.POST("/user/avatar", c.user.UploadAvatar)
	}
}
