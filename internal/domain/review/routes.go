package review

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	reviews := api.Group("/review")
	{
		reviews.POST("", h.Create)
		reviews.GET("/provider/:id", h.GetByProvider)
		reviews.GET("/provider/:id/rating", h.GetProviderRating)
		reviews.GET("/user/:id", h.GetByUser)
	}
}
