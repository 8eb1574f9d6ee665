package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"gorm.io/gorm"

	"servicehub/internal/config"
	"servicehub/internal/database"
	"servicehub/internal/domain/auth"
	"servicehub/internal/domain/booking"
	"servicehub/internal/domain/complaint"
	"servicehub/internal/domain/notification"
	"servicehub/internal/domain/profile"
	"servicehub/internal/domain/review"
)

var logger = loggo.GetLogger("servicehub.seed")

const demoPassword = "Demo@1234"

func main() {
	if err := run(context.Background()); err != nil {
		logger.Criticalf("seed failed: %s", errors.Details(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := loggo.ConfigureLoggers(cfg.LogLevel); err != nil {
		return err
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close(db)

	logger.Infof("running migrations")
	models := append(auth.Models(), profile.Models()...)
	models = append(models, &booking.Booking{}, &notification.Notification{})
	models = append(models, complaint.Models()...)
	models = append(models, review.Models()...)
	if err := database.Migrate(db, models...); err != nil {
		return err
	}

	logger.Infof("cleaning old data")
	if err := wipe(db); err != nil {
		return err
	}

	identities := auth.NewIdentityRepository(db)
	profiles := profile.NewRepository(db)
	authSvc := auth.NewService(identities, profiles)
	notifs := notification.NewService(notification.NewNotificationRepository(db))
	bookings := booking.NewService(booking.NewRepository(db), notifs)
	reviews := review.NewService(review.NewReviewRepository(db))
	complaints := complaint.NewService(complaint.NewComplaintRepository(db))

	// ================== ACCOUNTS ==================
	if _, err := authSvc.Register(ctx, auth.RegisterRequest{
		FullName: "Platform Admin",
		Mobile:   "9000000000",
		Email:    "admin@servicehub.local",
		Password: demoPassword,
		Role:     string(auth.RoleAdmin),
	}); err != nil {
		return errors.Annotate(err, "register admin")
	}

	var users []int64
	for i, name := range []string{"Asha Verma", "Rohan Mehta", "Priya Nair"} {
		s, err := authSvc.Register(ctx, auth.RegisterRequest{
			FullName: name,
			Mobile:   fmt.Sprintf("98000000%02d", i+1),
			Password: demoPassword,
			Role:     string(auth.RoleUser),
			Location: "Bengaluru",
		})
		if err != nil {
			return errors.Annotatef(err, "register user %q", name)
		}
		users = append(users, s.ID)
	}

	type demoProvider struct {
		name, service, location, price string
		experience                     int
	}
	var providers []int64
	for i, p := range []demoProvider{
		{"Ravi Kumar", "Plumbing", "Bengaluru North", "350", 6},
		{"Meera Iyer", "Electrical", "Bengaluru South", "420.50", 9},
		{"Arjun Rao", "Cleaning", "Kochi", "250", 3},
		{"Sana Khan", "Carpentry", "Kochi", "500", 12},
	} {
		exp := p.experience
		s, err := authSvc.Register(ctx, auth.RegisterRequest{
			FullName:     p.name,
			Mobile:       fmt.Sprintf("91000000%02d", i+1),
			Password:     demoPassword,
			Role:         string(auth.RoleProvider),
			ServiceType:  p.service,
			Experience:   &exp,
			Price:        p.price,
			Availability: "Mon-Sat 09:00-18:00",
			Location:     p.location,
		})
		if err != nil {
			return errors.Annotatef(err, "register provider %q", p.name)
		}
		providers = append(providers, s.ID)

		for _, day := range []profile.Day{profile.Monday, profile.Wednesday, profile.Friday} {
			slot := &profile.ScheduleSlot{ProviderID: s.ID, DayOfWeek: day, StartTime: "09:00", EndTime: "18:00"}
			if err := profiles.CreateScheduleSlot(ctx, slot); err != nil {
				return err
			}
		}
	}
	logger.Infof("created %d users and %d providers (password %s)", len(users), len(providers), demoPassword)

	// ================== BOOKINGS ==================
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	outcomes := []string{"ACCEPTED", "REJECTED", "COMPLETED", "PAID", ""}
	day := time.Now().AddDate(0, 0, 1)

	for i := 0; i < 8; i++ {
		userID := users[rnd.Intn(len(users))]
		providerID := providers[rnd.Intn(len(providers))]
		p, err := profiles.GetProvider(ctx, providerID)
		if err != nil {
			return err
		}

		b, err := bookings.Create(ctx, booking.CreateBookingRequest{
			UserID:      userID,
			ProviderID:  providerID,
			ServiceType: p.ServiceType,
			BookingDate: day.AddDate(0, 0, i).Format(booking.DateLayout),
			BookingTime: fmt.Sprintf("%02d:00", 9+rnd.Intn(8)),
		})
		if err != nil {
			return errors.Annotate(err, "create booking")
		}

		if next := outcomes[rnd.Intn(len(outcomes))]; next != "" {
			if _, err := bookings.UpdateStatus(ctx, b.ID, next); err != nil {
				return err
			}
			if next == "COMPLETED" || next == "PAID" {
				comment := "Quick and tidy work"
				if _, err := reviews.Create(ctx, review.CreateReviewRequest{
					BookingID:  b.ID,
					UserID:     userID,
					ProviderID: providerID,
					Rating:     3 + rnd.Intn(3),
					Comment:    &comment,
				}); err != nil {
					return err
				}
			}
		}
	}

	if _, err := complaints.Create(ctx, complaint.CreateComplaintRequest{
		UserID:     users[0],
		ProviderID: &providers[0],
		Message:    "Technician arrived an hour late",
	}); err != nil {
		return err
	}

	logger.Infof("seed completed")
	return nil
}

// wipe clears seeded tables in dependency order.
func wipe(db *gorm.DB) error {
	for _, table := range []string{
		"notifications",
		"reviews",
		"complaints",
		"bookings",
		"service_schedules",
		"admins",
		"service_providers",
		"users",
		"identities",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return errors.Annotatef(err, "clean %s", table)
		}
	}
	return nil
}
