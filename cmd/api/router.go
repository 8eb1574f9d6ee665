package main

import (
	"github.com/gin-gonic/gin"

	"servicehub/internal/config"
	"servicehub/internal/middleware"
)

func newRouter(cfg *config.Config, h *handlers, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(),
		middleware.CORS(cfg.CORSMaxAge),
	)

	api := r.Group("/api")
	{
		h.auth.RegisterRoutes(api, limiter.Handler())
		h.booking.RegisterRoutes(api)
		h.notification.RegisterRoutes(api)
		h.profile.RegisterRoutes(api)
		h.review.RegisterRoutes(api)
		h.complaint.RegisterRoutes(api)
		h.admin.RegisterRoutes(api)
	}
	return r
}
