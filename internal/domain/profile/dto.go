package profile

// UpdateUserRequest replaces every editable user field.
type UpdateUserRequest struct {
	FullName string  `json:"fullName"`
	Email    *string `json:"email"`
	Mobile   string  `json:"mobile"`
	Location string  `json:"location"`
}

// UpdateProviderRequest changes only the fields that are present.
type UpdateProviderRequest struct {
	FullName     *string  `json:"fullName"`
	Email        *string  `json:"email"`
	Mobile       *string  `json:"mobile"`
	ServiceType  *string  `json:"serviceType"`
	Experience   *int     `json:"experience"`
	Price        *float64 `json:"price"`
	Availability *string  `json:"availability"`
	Location     *string  `json:"location"`
}

type AddScheduleSlotRequest struct {
	DayOfWeek string `json:"dayOfWeek" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}
