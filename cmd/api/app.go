package main

import (
	"gorm.io/gorm"

	"servicehub/internal/domain/admin"
	"servicehub/internal/domain/auth"
	"servicehub/internal/domain/booking"
	"servicehub/internal/domain/complaint"
	"servicehub/internal/domain/notification"
	"servicehub/internal/domain/profile"
	"servicehub/internal/domain/review"
)

// models lists every table the API owns, in migration order.
func models() []any {
	all := auth.Models()
	all = append(all, profile.Models()...)
	all = append(all, &booking.Booking{}, &notification.Notification{})
	all = append(all, complaint.Models()...)
	all = append(all, review.Models()...)
	return all
}

type handlers struct {
	auth         *auth.Handler
	booking      *booking.Handler
	notification *notification.Handler
	profile      *profile.Handler
	review       *review.Handler
	complaint    *complaint.Handler
	admin        *admin.Handler
}

// wire builds repositories, services and handlers on top of db.
func wire(db *gorm.DB) *handlers {
	identityRepo := auth.NewIdentityRepository(db)
	profileRepo := profile.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	notificationRepo := notification.NewNotificationRepository(db)
	complaintRepo := complaint.NewComplaintRepository(db)
	reviewRepo := review.NewReviewRepository(db)

	notificationService := notification.NewService(notificationRepo)
	reviewService := review.NewService(reviewRepo)
	complaintService := complaint.NewService(complaintRepo)

	authService := auth.NewService(identityRepo, profileRepo)
	bookingService := booking.NewService(bookingRepo, notificationService)
	profileService := profile.NewService(profileRepo, reviewService)
	adminService := admin.NewService(profileRepo, bookingRepo, complaintService, notificationRepo)

	return &handlers{
		auth:         auth.NewHandler(authService),
		booking:      booking.NewHandler(bookingService),
		notification: notification.NewHandler(notificationService),
		profile:      profile.NewHandler(profileService),
		review:       review.NewHandler(reviewService),
		complaint:    complaint.NewHandler(complaintService),
		admin:        admin.NewHandler(adminService),
	}
}
