package complaint

type CreateComplaintRequest struct {
	UserID     int64  `json:"userId" binding:"required"`
	ProviderID *int64 `json:"providerId"`
	Message    string `json:"message" binding:"required"`
}

type RespondRequest struct {
	Status   string  `json:"status" binding:"required"`
	Response *string `json:"response"`
}
