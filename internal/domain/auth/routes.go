package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts /auth under rg. Extra middleware, such as the rate
// limiter, applies to the whole group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, mw ...gin.HandlerFunc) {
	auth := rg.Group("/auth", mw...)
	{
		auth.GET("/test", h.Test)
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}
