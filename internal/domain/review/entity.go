package review

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is an append-only rating a user leaves for a provider after a booking.
type Review struct {
	ID         int64     `json:"reviewId"`
	BookingID  int64     `json:"bookingId"`
	UserID     int64     `json:"userId"`
	ProviderID int64     `json:"providerId"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}
