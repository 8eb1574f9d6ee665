package complaint

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the user-facing complaint endpoint. Moderation lives
// under /admin.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/complaints", h.Create)
}
