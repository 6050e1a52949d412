package routes

import (
	"net/http"
	"time"

	"paguro/handlers"
	"paguro/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every handler the router needs.
type HandlerBundle struct {
	Chat      *handlers.ChatHandler
	Occupancy *handlers.OccupancyHandler
}

// RegisterChatRoutes registers the chat endpoints. The /chatbot alias
// exists for older widget installs.
func RegisterChatRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/chat", hb.Chat.HandleChat)
		api.POST("/chatbot", hb.Chat.HandleChat)
		api.GET("/db/occupancy", hb.Occupancy.ListOccupancyHandler)
	}
}

// RegisterHealthRoutes registers the health-check and diagnostic endpoints.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"service":   "paguro_receptionist_villa_celi",
			"location":  "Palinuro, Cilento",
			"backends":  utils.GetHealthStatus(),
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
	r.GET("/api/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "API Paguro per Villa Celi Palinuro funzionante!",
			"location":  "Palinuro, Cilento",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Wide-open CORS: the chat widget is embedded in the property's
	// WordPress site.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterHealthRoutes(r)
}
