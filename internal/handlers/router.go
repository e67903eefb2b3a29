package handlers

import (
	"github.com/gin-gonic/gin"

	"taskledger/internal/middleware"
)

// Router mounts the full call surface: public auth/health routes and the
// token-protected task and admin groups.
func Router(h *Handler, jwtKey string) *gin.Engine {
	router := gin.Default()

	router.GET("/health", h.Health)
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)

	authorized := router.Group("/", middleware.Auth(jwtKey))

	tasks := authorized.Group("/tasks")
	tasks.POST("", h.CreateTask)
	tasks.GET("", h.GetTasks)
	tasks.GET("/due-soon", h.GetTasksDueSoon)
	tasks.GET("/count", h.GetTaskCount)
	tasks.GET("/:id", h.GetTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.PATCH("/:id/completion", h.SetTaskCompletion)
	tasks.DELETE("/:id", h.DeleteTask)

	admin := authorized.Group("/admin")
	admin.DELETE("/tasks/:id", h.AdminDeleteTask)
	admin.GET("/tasks/count", h.GetTotalTaskCount)
	admin.PUT("/paused", h.SetPaused)
	admin.PUT("/max-tasks", h.SetMaxTasks)
	admin.PUT("/transfer", h.TransferAdmin)
	admin.GET("/events", h.GetEvents)

	return router
}
