package notification

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/juju/errors"
)

// Repository is the storage the dispatcher needs.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id int64) (*Notification, error)
	ListByReceiver(ctx context.Context, receiverID int64, status Status) ([]Notification, error)
	CountUnread(ctx context.Context, receiverID int64) (int64, error)
	MarkAsRead(ctx context.Context, id int64) error
	MarkAllAsRead(ctx context.Context, receiverID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores n, defaulting its status to UNREAD.
func (s *Service) Create(ctx context.Context, n *Notification) (*Notification, error) {
	if n == nil {
		return nil, errors.NewNotValid(nil, "Notification is required")
	}
	n.Message = strings.TrimSpace(n.Message)
	n.ReceiverType = ReceiverType(strings.ToUpper(strings.TrimSpace(string(n.ReceiverType))))
	n.Status = Status(strings.ToUpper(strings.TrimSpace(string(n.Status))))

	if n.ReceiverID <= 0 {
		return nil, errors.NewNotValid(nil, "Receiver ID is required")
	}
	if n.ReceiverType != ReceiverUser && n.ReceiverType != ReceiverProvider {
		return nil, errors.NewNotValid(nil, "Receiver type must be USER or PROVIDER")
	}
	if n.Message == "" {
		return nil, errors.NewNotValid(nil, "Message is required")
	}
	if utf8.RuneCountInString(n.Message) > MaxMessageLen {
		return nil, errors.NewNotValid(nil, "Message must not exceed 500 characters")
	}
	switch n.Status {
	case "":
		n.Status = StatusUnread
	case StatusUnread, StatusRead:
	default:
		return nil, errors.NewNotValid(nil, "Status must be UNREAD or READ")
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// Send builds and stores a notification. It is the entry point other
// domains use to notify a receiver.
func (s *Service) Send(ctx context.Context, receiverID int64, receiverType ReceiverType, t Type, message string, bookingID *int64) error {
	_, err := s.Create(ctx, &Notification{
		ReceiverID:       receiverID,
		ReceiverType:     receiverType,
		Message:          message,
		Type:             t,
		RelatedBookingID: bookingID,
	})
	return err
}

func (s *Service) ListByReceiver(ctx context.Context, receiverID int64) ([]Notification, error) {
	return s.repo.ListByReceiver(ctx, receiverID, "")
}

func (s *Service) ListUnread(ctx context.Context, receiverID int64) ([]Notification, error) {
	return s.repo.ListByReceiver(ctx, receiverID, StatusUnread)
}

func (s *Service) CountUnread(ctx context.Context, receiverID int64) (int64, error) {
	return s.repo.CountUnread(ctx, receiverID)
}

// MarkRead flips one notification to READ. Marking an already-read
// notification succeeds without a write.
func (s *Service) MarkRead(ctx context.Context, id int64) (*Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.IsRead() {
		return n, nil
	}
	if err := s.repo.MarkAsRead(ctx, id); err != nil {
		return nil, err
	}
	n.MarkAsRead()
	return n, nil
}

// MarkAllRead flips every unread notification of the receiver in one batch
// and returns how many changed.
func (s *Service) MarkAllRead(ctx context.Context, receiverID int64) (int64, error) {
	return s.repo.MarkAllAsRead(ctx, receiverID)
}

// Delete removes the notification. A missing id is not an error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
