package profile

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	user := api.Group("/user")
	{
		user.GET("/profile/:id", h.GetUserProfile)
		user.PUT("/profile/:id", h.UpdateUserProfile)
	}

	provider := api.Group("/provider")
	{
		provider.GET("/profile/:id", h.GetProviderProfile)
		provider.PUT("/profile/:id", h.UpdateProviderProfile)
		provider.GET("/search", h.SearchProviders)
		provider.GET("/reviews/:id", h.GetProviderReviews)
		provider.GET("/schedule/:id", h.GetSchedule)
		provider.POST("/schedule/:id", h.AddScheduleSlot)
	}
}
