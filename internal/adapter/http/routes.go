package http

import (
	"taskboard/internal/adapter/http/handlers"
	"taskboard/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Docs   *handlers.DocsHandler
	Auth   *handlers.AuthHandler
	Task   *handlers.TaskHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, authMiddleware gin.HandlerFunc) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
		api.GET("/docs/openapi.json", h.Docs.OpenAPI)

		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)
	}

	secured := api.Group("")
	secured.Use(authMiddleware)
	{
		secured.GET("/auth/me", h.Auth.Me)

		secured.GET("/tasks", h.Task.ListTasks)
		secured.POST("/tasks", h.Task.CreateTask)
		secured.GET("/tasks/:id", h.Task.GetTask)
		secured.PUT("/tasks/:id", h.Task.UpdateTask)
		secured.PATCH("/tasks/:id", h.Task.UpdateTask)
		secured.DELETE("/tasks/:id", h.Task.DeleteTask)
	}
}
