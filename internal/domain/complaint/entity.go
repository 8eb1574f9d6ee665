package complaint

import "time"

type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
)

// Complaint is raised by a user, optionally against a provider, and moderated
// by admins.
type Complaint struct {
	ID         int64     `gorm:"primaryKey;column:complaint_id" json:"complaintId"`
	UserID     int64     `gorm:"column:user_id;not null;index" json:"userId"`
	ProviderID *int64    `gorm:"column:provider_id;index" json:"providerId"`
	Message    string    `gorm:"column:message;type:text;not null" json:"message"`
	Status     Status    `gorm:"column:status;size:20;not null;index" json:"status"`
	Response   *string   `gorm:"column:response;type:text" json:"response"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Complaint) TableName() string { return "complaints" }

// Models returns the gorm models owned by this package.
func Models() []any {
	return []any{&Complaint{}}
}
