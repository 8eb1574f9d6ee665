package profile

import "time"

// User is the profile row of a USER identity.
type User struct {
	ID        int64     `gorm:"primaryKey;column:user_id" json:"userId"`
	HomeID    int64     `gorm:"column:home_id;not null;uniqueIndex" json:"homeId"`
	FullName  string    `gorm:"column:full_name;size:100;not null" json:"fullName"`
	Email     *string   `gorm:"column:email;size:100" json:"email"`
	Mobile    string    `gorm:"column:mobile;size:15;not null" json:"mobile"`
	Location  string    `gorm:"column:location;size:255" json:"location"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (User) TableName() string { return "users" }

// Provider is the profile row of a SERVICE_PROVIDER identity.
type Provider struct {
	ID           int64     `gorm:"primaryKey;column:provider_id" json:"providerId"`
	HomeID       int64     `gorm:"column:home_id;not null;uniqueIndex" json:"homeId"`
	FullName     string    `gorm:"column:full_name;size:100;not null" json:"fullName"`
	Email        *string   `gorm:"column:email;size:100" json:"email"`
	Mobile       string    `gorm:"column:mobile;size:15;not null" json:"mobile"`
	ServiceType  string    `gorm:"column:service_type;size:100;index" json:"serviceType"`
	Experience   int       `gorm:"column:experience;not null;default:0" json:"experience"`
	Price        float64   `gorm:"column:price;type:decimal(10,2);not null;default:0" json:"price"`
	Availability string    `gorm:"column:availability;size:255" json:"availability"`
	Location     string    `gorm:"column:location;size:255;index" json:"location"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Provider) TableName() string { return "service_providers" }

// Admin is the profile row of an ADMIN identity.
type Admin struct {
	ID        int64     `gorm:"primaryKey;column:admin_id" json:"adminId"`
	HomeID    int64     `gorm:"column:home_id;not null;uniqueIndex" json:"homeId"`
	FullName  string    `gorm:"column:full_name;size:100;not null" json:"fullName"`
	Email     *string   `gorm:"column:email;size:100" json:"email"`
	Mobile    string    `gorm:"column:mobile;size:15;not null" json:"mobile"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Admin) TableName() string { return "admins" }

// Day is a weekday in a provider's schedule.
type Day string

const (
	Monday    Day = "MON"
	Tuesday   Day = "TUE"
	Wednesday Day = "WED"
	Thursday  Day = "THU"
	Friday    Day = "FRI"
	Saturday  Day = "SAT"
	Sunday    Day = "SUN"
)

var weekdays = map[Day]bool{
	Monday: true, Tuesday: true, Wednesday: true, Thursday: true,
	Friday: true, Saturday: true, Sunday: true,
}

// ScheduleSlot is one weekly availability window of a provider.
type ScheduleSlot struct {
	ID         int64  `gorm:"primaryKey;column:schedule_id" json:"scheduleId"`
	ProviderID int64  `gorm:"column:provider_id;not null;index" json:"providerId"`
	DayOfWeek  Day    `gorm:"column:day_of_week;size:10;not null" json:"dayOfWeek"`
	StartTime  string `gorm:"column:start_time;size:5;not null" json:"startTime"`
	EndTime    string `gorm:"column:end_time;size:5;not null" json:"endTime"`
}

func (ScheduleSlot) TableName() string { return "service_schedules" }

// Models returns the gorm models owned by this package.
func Models() []any {
	return []any{&User{}, &Provider{}, &Admin{}, &ScheduleSlot{}}
}
