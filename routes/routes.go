package routes

import (
	"net/http"
	"time"

	"scholaris/handlers"
	"scholaris/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers wired in main.
type HandlerBundle struct {
	Chat      *handlers.ChatHandler
	Knowledge *handlers.KnowledgeHandler
	Admin     *handlers.AdminHandler
}

// RegisterChatRoutes registers the conversational endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("", hb.Chat.HandleChatMessage)
		api.DELETE("/:sessionID", hb.Chat.HandleResetSession)
	}
}

// RegisterKnowledgeRoutes registers knowledge-base ingestion.
func RegisterKnowledgeRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/knowledge")
	{
		api.POST("/upload", hb.Knowledge.HandleUploadDocument)
	}
}

// RegisterAdminRoutes registers the read-only booking reporting view.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AdminAuthMiddleware())
		api.GET("/bookings", hb.Admin.ListBookingsHandler)
		api.GET("/bookings/metrics", hb.Admin.BookingMetricsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Scholaris"})
	})
}

// RegisterRoutes wires global middleware and every route group.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterKnowledgeRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
