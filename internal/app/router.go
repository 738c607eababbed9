package app

import (
	"ai_edu_navigator/docs"
	"ai_edu_navigator/internal/middleware"
	"ai_edu_navigator/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.Use(middleware.DeviceMiddleware())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(api, c)

	// 2. 需要授权的路由
	authGroup := api.Group("")
	authGroup.Use(middleware.AuthMiddleware(a.services.auth))
	a.registerUserRoutes(authGroup, c)
}

func (a *App) registerPublicRoutes(api *gin.RouterGroup, c *controllers) {
	api.GET("/health", c.health.HealthCheck)

	auth := api.Group("/auth")
	{
		auth.POST("/login", c.auth.Login)
		auth.POST("/register", c.auth.Register)
		auth.POST("/github", c.auth.LoginWithGithub)
		auth.POST("/linkedin", c.auth.LoginWithLinkedin)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", c.course.ListCourses)
		courses.GET("/categories", c.course.Categories)
		courses.GET("/:id", c.course.GetCourse)
	}

	onboarding := api.Group("/onboarding")
	{
		onboarding.GET("/steps", c.onboarding.GetSteps)
		onboarding.POST("/steps/:step/check", c.onboarding.CanProceed)
	}

	api.POST("/app/lifecycle", c.app.Lifecycle)
}

func (a *App) registerUserRoutes(authGroup *gin.RouterGroup, c *controllers) {
	authGroup.GET("/auth/session", c.auth.Session)
	authGroup.POST("/auth/logout", c.auth.Logout)

	authGroup.GET("/profile", c.user.GetProfile)

	user := authGroup.Group("/user")
	{
		user.PUT("/preferences", c.user.UpdatePreferences)
		user.GET("/onboarding-status", c.user.OnboardingStatus)

		user.GET("/queue", c.user.GetQueue)
		user.POST("/queue/:courseId", c.user.AddToQueue)
		user.DELETE("/queue/:courseId", c.user.RemoveFromQueue)

		user.GET("/settings", c.user.GetSettings)
		user.PUT("/settings", c.user.UpdateSettings)
	}

	recommendations := authGroup.Group("/recommendations")
	{
		recommendations.GET("/path", c.recommendation.GetPath)
		recommendations.GET("/courses", c.recommendation.GetCourses)
	}

	authGroup.GET("/dashboard", c.dashboard.GetDashboard)
	authGroup.GET("/progress", c.progress.GetProgress)
}
