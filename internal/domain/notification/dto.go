package notification

// CreateNotificationRequest for creating notifications via API
type CreateNotificationRequest struct {
	ReceiverID       int64  `json:"receiverId" binding:"required"`
	ReceiverType     string `json:"receiverType" binding:"required"`
	Message          string `json:"message" binding:"required"`
	Type             string `json:"type"`
	Status           string `json:"status"`
	RelatedBookingID *int64 `json:"relatedBookingId"`
}

func (r CreateNotificationRequest) toEntity() *Notification {
	return &Notification{
		ReceiverID:       r.ReceiverID,
		ReceiverType:     ReceiverType(r.ReceiverType),
		Message:          r.Message,
		Type:             Type(r.Type),
		Status:           Status(r.Status),
		RelatedBookingID: r.RelatedBookingID,
	}
}

// UnreadCountResponse for unread count endpoint
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
