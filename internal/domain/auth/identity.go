package auth

import "time"

// Identity is the root account shared by every role. It holds the login
// credentials; the role-specific data lives in exactly one profile row.
type Identity struct {
	ID           int64     `gorm:"primaryKey;column:id" json:"id"`
	FullName     string    `gorm:"column:full_name;size:100;not null" json:"fullName"`
	Email        *string   `gorm:"column:email;size:100;uniqueIndex" json:"email"`
	Mobile       string    `gorm:"column:mobile;size:15;not null;uniqueIndex" json:"mobile"`
	PasswordHash string    `gorm:"column:password;size:255;not null" json:"-"`
	Role         Role      `gorm:"column:role;size:20;not null" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Identity) TableName() string { return "identities" }

// Models returns the gorm models owned by this package.
func Models() []any {
	return []any{&Identity{}}
}
