package notification

import "github.com/gin-gonic/gin"

// RegisterRoutes registers all notification-related routes. The :id segment
// is a receiver id on the list/read-all routes and a notification id on the
// single-notification routes.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	notifGroup := api.Group("/notifications")
	{
		notifGroup.POST("", h.Create)
		notifGroup.GET("/:id", h.ListByReceiver)
		notifGroup.GET("/:id/unread", h.ListUnread)
		notifGroup.GET("/:id/unread/count", h.CountUnread)
		notifGroup.PATCH("/:id/read", h.MarkAsRead)
		notifGroup.PATCH("/:id/read-all", h.MarkAllAsRead)
		notifGroup.DELETE("/:id", h.Delete)
	}
}
