package api

import "github.com/gin-gonic/gin"

// SetupRoutes registers the JSON API under /api.
func SetupRoutes(r *gin.Engine, h *Handlers) {
	apiGroup := r.Group("/api")

	// Catalog
	apiGroup.GET("/ingredients", h.ListIngredients)
	apiGroup.GET("/ingredients/search", h.SearchIngredients)

	// Tracking
	apiGroup.POST("/tracking", h.TrackIngredient)

	// Daily details
	apiGroup.GET("/days/:date", h.GetDailyDetails)
	apiGroup.DELETE("/days/:date", h.RemoveDailyDetails)

	// Profile
	apiGroup.GET("/profile", h.GetUserData)
	apiGroup.PUT("/profile", h.SubmitUserData)
	apiGroup.DELETE("/profile", h.RemoveUserData)
}
