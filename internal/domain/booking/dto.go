package booking

type CreateBookingRequest struct {
	UserID      int64  `json:"userId" binding:"required"`
	ProviderID  int64  `json:"providerId" binding:"required"`
	ServiceType string `json:"serviceType" binding:"required"`
	BookingDate string `json:"bookingDate" binding:"required"`
	BookingTime string `json:"bookingTime" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type CancelBookingRequest struct {
	UserID int64 `json:"userId" binding:"required"`
}
