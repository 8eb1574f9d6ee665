package booking

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the booking endpoints under rg.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.GET("/user/:id", h.GetUserBookings)
		bookings.GET("/provider/:id", h.GetProviderBookings)

		// Booking lifecycle management
		bookings.PUT("/:id/status", h.UpdateBookingStatus)
		bookings.PATCH("/:id/status", h.UpdateBookingStatus)
		bookings.PATCH("/:id/cancel", h.CancelBooking)
	}
}
