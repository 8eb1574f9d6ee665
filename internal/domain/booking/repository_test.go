package booking

import (
	"context"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicehub/internal/domain/notification"
	"servicehub/internal/testutil"
)

func setupStore(t *testing.T) (*Service, *Repository, *notification.Service) {
	t.Helper()
	db := testutil.NewDB(t, &Booking{}, &notification.Notification{})
	repo := NewRepository(db)
	notifs := notification.NewService(notification.NewNotificationRepository(db))
	return NewService(repo, notifs), repo, notifs
}

func TestRepository_RoundTrip(t *testing.T) {
	_, repo, _ := setupStore(t)
	ctx := context.Background()

	b := pendingBooking()
	b.ID = 0
	require.NoError(t, repo.Create(ctx, b))
	require.NotZero(t, b.ID)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-11-02", got.BookingDate)
	assert.Equal(t, "09:30", got.BookingTime)
	assert.Equal(t, StatusPending, got.Status)
	assert.False(t, got.CreatedAt.IsZero())

	require.NoError(t, repo.UpdateStatus(ctx, b.ID, StatusPaid))
	got, err = repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, got.Status)

	_, err = repo.GetByID(ctx, 4242)
	assert.True(t, errors.IsNotFound(err))
	assert.True(t, errors.IsNotFound(repo.UpdateStatus(ctx, 4242, StatusPaid)))
}

func TestRepository_ListsAndCount(t *testing.T) {
	svc, repo, _ := setupStore(t)
	ctx := context.Background()

	for _, req := range []CreateBookingRequest{
		{UserID: 1, ProviderID: 10, ServiceType: "Cleaning", BookingDate: "2026-11-01", BookingTime: "08:00"},
		{UserID: 1, ProviderID: 11, ServiceType: "Electrical", BookingDate: "2026-11-03", BookingTime: "10:00"},
		{UserID: 2, ProviderID: 10, ServiceType: "Cleaning", BookingDate: "2026-11-04", BookingTime: "12:00"},
	} {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	mine, err := svc.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Greater(t, mine[0].ID, mine[1].ID)

	theirs, err := svc.ListByProvider(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, theirs, 2)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := svc.ListByUser(ctx, 77)
	require.NoError(t, err)
	assert.Empty(t, none)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	pending, err := repo.Count(ctx, StatusPending)
	require.NoError(t, err)
	assert.EqualValues(t, 3, pending)
}

func TestService_StoresNotificationsWithBooking(t *testing.T) {
	svc, _, notifs := setupStore(t)
	ctx := context.Background()

	b, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	inbox, err := notifs.ListByReceiver(ctx, b.ProviderID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, notification.TypeBookingRequest, inbox[0].Type)
	assert.Equal(t, notification.ReceiverProvider, inbox[0].ReceiverType)
	require.NotNil(t, inbox[0].RelatedBookingID)
	assert.Equal(t, b.ID, *inbox[0].RelatedBookingID)

	_, err = svc.UpdateStatus(ctx, b.ID, "confirmed")
	require.NoError(t, err)

	got, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, got.Status)

	userInbox, err := notifs.ListUnread(ctx, b.UserID)
	require.NoError(t, err)
	require.Len(t, userInbox, 1)
	assert.Equal(t, notification.TypeBookingAccepted, userInbox[0].Type)
}

func TestService_CancelByStrangerLeavesStatus(t *testing.T) {
	svc, _, _ := setupStore(t)
	ctx := context.Background()

	b, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, b.ID, b.UserID+1)
	require.True(t, errors.IsUnauthorized(err))

	got, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
}
