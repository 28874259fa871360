package routes

import (
	"net/http"
	"time"

	"tidybook/handlers"
	"tidybook/middleware"
	"tidybook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers catalog browsing endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/rooms", hb.ListRoomsHandler)
		api.GET("/rooms/:roomType/tiers", hb.GetRoomTiersHandler)
		api.GET("/rooms/:roomType/addons", hb.GetRoomAddOnsHandler)
		api.GET("/rooms/:roomType/reductions", hb.GetRoomReductionsHandler)
		api.POST("/rooms/:roomType/compatibility", hb.EvaluateCompatibilityHandler)
	}
}

// RegisterQuoteRoutes sets up the pricing wizard session endpoints. All
// routes addressing an existing session require the session token.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/quote")
	{
		api.POST("/session", hb.InitiateQuoteHandler)

		protected := api.Group("")
		protected.Use(middleware.SessionAuthMiddleware())
		protected.GET("/session/:sessionID", hb.GetQuoteHandler)
		protected.PUT("/session/:sessionID", hb.UpdateQuoteHandler)
		protected.PUT("/session/:sessionID/rooms/:roomType", hb.SaveRoomConfigurationHandler)
		protected.POST("/session/:sessionID/complete", hb.CompleteQuoteHandler)
		protected.DELETE("/session/:sessionID", hb.CancelQuoteHandler)
	}
}

// RegisterCheckoutRoutes sets up order confirmation.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/checkout")
	{
		api.Use(middleware.SessionAuthMiddleware())
		api.POST("/confirm", hb.ConfirmCheckoutHandler)
	}
}

// RegisterOrderRoutes sets up placed-order lookup and cancellation.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/orders")
	{
		api.GET("", hb.ListOrdersHandler)
		api.GET("/:orderID", hb.GetOrderHandler)
		api.POST("/:orderID/cancel", hb.CancelOrderHandler)
	}
}

// RegisterTermsRoutes sets up the terms-of-service gate.
func RegisterTermsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/terms")
	{
		api.GET("", hb.GetTermsHandler)
		api.POST("/accept", hb.AcceptTermsHandler)
		api.GET("/status", hb.TermsStatusHandler)
	}
}

// RegisterSupportRoutes sets up the scripted support chat.
func RegisterSupportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/support")
	{
		api.GET("/tree", hb.SupportRootHandler)
		api.POST("/reply", hb.SupportReplyHandler)
	}
}

// RegisterPreferencesRoutes sets up saved-preferences endpoints.
func RegisterPreferencesRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/preferences")
	{
		api.GET("/:deviceID", hb.GetPreferencesHandler)
		api.PUT("/:deviceID", hb.UpdatePreferencesHandler)
		api.DELETE("/:deviceID", hb.DeletePreferencesHandler)
	}
}

// RegisterAdminRoutes sets up admin-key-gated catalog overrides.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.PUT("/catalog/rooms/:roomType", hb.UpdateRoomRatesHandler)
		adminGroup.DELETE("/orders/:orderID", hb.DeleteOrderHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterQuoteRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterTermsRoutes(r, hb)
	RegisterSupportRoutes(r, hb)
	RegisterPreferencesRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
