package notification

import (
	"context"

	"github.com/juju/errors"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) DB() *gorm.DB {
	return r.db
}

func (r *NotificationRepository) Create(ctx context.Context, n *Notification) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return errors.Annotatef(err, "insert notification for receiver %d", n.ReceiverID)
	}
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id int64) (*Notification, error) {
	var n Notification
	err := r.db.WithContext(ctx).First(&n, "notification_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errNotFound(id)
	}
	if err != nil {
		return nil, errors.Annotatef(err, "load notification %d", id)
	}
	return &n, nil
}

// ListByReceiver returns newest first. A non-empty status narrows the list.
func (r *NotificationRepository) ListByReceiver(ctx context.Context, receiverID int64, status Status) ([]Notification, error) {
	q := r.db.WithContext(ctx).
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Order("notification_id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	out := make([]Notification, 0)
	if err := q.Find(&out).Error; err != nil {
		return nil, errors.Annotatef(err, "list notifications for receiver %d", receiverID)
	}
	return out, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, receiverID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("receiver_id = ? AND status = ?", receiverID, StatusUnread).
		Count(&count).Error
	if err != nil {
		return 0, errors.Annotatef(err, "count unread for receiver %d", receiverID)
	}
	return count, nil
}

// CountAllUnread counts unread notifications across every receiver.
func (r *NotificationRepository) CountAllUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("status = ?", StatusUnread).
		Count(&count).Error
	return count, errors.Annotate(err, "count unread notifications")
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("notification_id = ?", id).
		Update("status", StatusRead)
	if res.Error != nil {
		return errors.Annotatef(res.Error, "mark notification %d read", id)
	}
	return nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, receiverID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("receiver_id = ? AND status = ?", receiverID, StatusUnread).
		Update("status", StatusRead)
	if res.Error != nil {
		return 0, errors.Annotatef(res.Error, "mark all read for receiver %d", receiverID)
	}
	return res.RowsAffected, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).
		Where("notification_id = ?", id).
		Delete(&Notification{}).Error
	return errors.Annotatef(err, "delete notification %d", id)
}
