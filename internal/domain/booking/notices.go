package booking

import (
	"fmt"

	"servicehub/internal/domain/notification"
)

// notice is one notification a booking change produces.
type notice struct {
	receiverID   int64
	receiverType notification.ReceiverType
	kind         notification.Type
	message      string
	bookingID    int64
}

func requestNotice(b *Booking) notice {
	return notice{
		receiverID:   b.ProviderID,
		receiverType: notification.ReceiverProvider,
		kind:         notification.TypeBookingRequest,
		message: fmt.Sprintf("🔔 New booking request from User #%d for %s on %s at %s",
			b.UserID, b.ServiceType, b.BookingDate, b.BookingTime),
		bookingID: b.ID,
	}
}

func cancelledByUserNotice(b *Booking) notice {
	return notice{
		receiverID:   b.ProviderID,
		receiverType: notification.ReceiverProvider,
		kind:         notification.TypeBookingCancelled,
		message: fmt.Sprintf("🚫 User #%d has cancelled their booking for %s on %s",
			b.UserID, b.ServiceType, b.BookingDate),
		bookingID: b.ID,
	}
}

// statusNotices selects the user-facing notice for a new status. Statuses
// missing from the table fall back to a generic update.
var statusNotices = map[Status]struct {
	kind    notification.Type
	message func(b *Booking) string
}{
	StatusAccepted: {notification.TypeBookingAccepted, func(b *Booking) string {
		return fmt.Sprintf("✅ Great news! Your booking for %s on %s has been accepted by the provider!", b.ServiceType, b.BookingDate)
	}},
	StatusRejected: {notification.TypeBookingRejected, func(b *Booking) string {
		return fmt.Sprintf("❌ Sorry, your booking for %s on %s has been rejected. Please try another provider.", b.ServiceType, b.BookingDate)
	}},
	StatusCompleted: {notification.TypeBookingCompleted, func(b *Booking) string {
		return fmt.Sprintf("🎉 Your booking for %s has been completed! Thank you for using our service.", b.ServiceType)
	}},
	StatusCancelled: {notification.TypeBookingCancelled, func(b *Booking) string {
		return fmt.Sprintf("🚫 Your booking for %s has been cancelled.", b.ServiceType)
	}},
}

func statusNotice(b *Booking) notice {
	n := notice{
		receiverID:   b.UserID,
		receiverType: notification.ReceiverUser,
		bookingID:    b.ID,
	}
	if entry, ok := statusNotices[b.Status]; ok {
		n.kind = entry.kind
		n.message = entry.message(b)
		return n
	}
	n.kind = notification.TypeBookingUpdate
	n.message = fmt.Sprintf("ℹ️ Your booking for %s status has been updated to: %s", b.ServiceType, b.Status)
	return n
}
