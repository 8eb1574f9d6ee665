package admin

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin")

	// listings
	admin.GET("/users", h.GetUsers)
	admin.GET("/providers", h.GetProviders)
	admin.GET("/bookings", h.GetBookings)

	// complaints moderation
	admin.GET("/complaints", h.GetComplaints)
	admin.PUT("/complaints/:id", h.UpdateComplaint)

	// statistics
	admin.GET("/stats", h.GetStats)
}
