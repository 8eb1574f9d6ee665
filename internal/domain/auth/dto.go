package auth

type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Mobile   string `json:"mobile" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`

	// Service provider fields
	ServiceType  string `json:"serviceType"`
	Experience   *int   `json:"experience"`
	Price        string `json:"price"`
	Availability string `json:"availability"`
	Location     string `json:"location"`
}

type LoginRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// AccountSummary is returned by both register and login.
type AccountSummary struct {
	Message     string  `json:"message"`
	Role        Role    `json:"role"`
	RedirectURL string  `json:"redirectUrl"`
	ID          int64   `json:"id"`
	FullName    string  `json:"fullName"`
	Email       *string `json:"email"`
	Mobile      string  `json:"mobile"`
}
