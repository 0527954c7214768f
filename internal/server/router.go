package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/akanksha509/AI-Tutor-sub001/internal/handlers"
)

type RouterConfig struct {
	LessonHandler     *handlers.LessonHandler
	ValidationHandler *handlers.ValidationHandler
	SSEHandler        *handlers.SSEHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	// SSE
	router.GET("/sse/stream", cfg.SSEHandler.Stream)

	api := router.Group("/api")
	{
		// Lessons
		api.POST("/lessons", cfg.LessonHandler.CreateLesson)
		api.GET("/lessons", cfg.LessonHandler.ListLessons)
		api.GET("/lessons/:id", cfg.LessonHandler.GetLesson)
		api.DELETE("/lessons/:id", cfg.LessonHandler.DeleteLesson)
		// Validation
		api.POST("/lessons/:id/chunks/validate", cfg.ValidationHandler.ValidateLessonChunk)
		api.GET("/lessons/:id/runs", cfg.ValidationHandler.GetRuns)
		api.POST("/chunks/validate", cfg.ValidationHandler.ValidateChunk)
	}

	return router
}
