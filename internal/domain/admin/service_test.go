package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"servicehub/internal/domain/booking"
	"servicehub/internal/domain/complaint"
	"servicehub/internal/domain/profile"
)

/* ==================== MOCKS ==================== */

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) ListUsers(ctx context.Context) ([]profile.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]profile.User), args.Error(1)
}

func (m *MockProfileRepository) ListProviders(ctx context.Context) ([]profile.Provider, error) {
	args := m.Called(ctx)
	return args.Get(0).([]profile.Provider), args.Error(1)
}

func (m *MockProfileRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileRepository) CountProviders(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) ListAll(ctx context.Context) ([]booking.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) Count(ctx context.Context, statuses ...booking.Status) (int64, error) {
	args := m.Called(ctx, statuses)
	return args.Get(0).(int64), args.Error(1)
}

type MockComplaintService struct {
	mock.Mock
}

func (m *MockComplaintService) List(ctx context.Context) ([]complaint.Complaint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]complaint.Complaint), args.Error(1)
}

func (m *MockComplaintService) Respond(ctx context.Context, id int64, req complaint.RespondRequest) (*complaint.Complaint, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*complaint.Complaint), args.Error(1)
}

func (m *MockComplaintService) CountOpen(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotificationCounter struct {
	mock.Mock
}

func (m *MockNotificationCounter) CountAllUnread(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

/* ==================== HELPERS ==================== */

type mocks struct {
	profiles      *MockProfileRepository
	bookings      *MockBookingRepository
	complaints    *MockComplaintService
	notifications *MockNotificationCounter
}

func newTestService() (*Service, mocks) {
	m := mocks{
		profiles:      new(MockProfileRepository),
		bookings:      new(MockBookingRepository),
		complaints:    new(MockComplaintService),
		notifications: new(MockNotificationCounter),
	}
	return NewService(m.profiles, m.bookings, m.complaints, m.notifications), m
}

/* ==================== TESTS ==================== */

func TestStats(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.profiles.On("CountUsers", mock.Anything).Return(int64(12), nil)
	m.profiles.On("CountProviders", mock.Anything).Return(int64(5), nil)
	m.bookings.On("Count", mock.Anything, []booking.Status(nil)).Return(int64(30), nil)
	m.bookings.On("Count", mock.Anything, []booking.Status{booking.StatusPending}).Return(int64(4), nil)
	m.complaints.On("CountOpen", mock.Anything).Return(int64(2), nil)
	m.notifications.On("CountAllUnread", mock.Anything).Return(int64(9), nil)

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{
		Users:               12,
		Providers:           5,
		Bookings:            30,
		PendingBookings:     4,
		OpenComplaints:      2,
		UnreadNotifications: 9,
	}, *st)

	m.profiles.AssertExpectations(t)
	m.bookings.AssertExpectations(t)
}

func TestStatsFailsOnFirstError(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.profiles.On("CountUsers", mock.Anything).Return(int64(0), errors.New("connection reset"))
	m.profiles.On("CountProviders", mock.Anything).Return(int64(5), nil)
	m.bookings.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)
	m.complaints.On("CountOpen", mock.Anything).Return(int64(0), nil)
	m.notifications.On("CountAllUnread", mock.Anything).Return(int64(0), nil)

	st, err := svc.Stats(ctx)
	require.Error(t, err)
	assert.Nil(t, st)
	assert.Contains(t, err.Error(), "count users")
}

func TestUpdateComplaintDelegates(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()
	req := complaint.RespondRequest{Status: "RESOLVED"}

	m.complaints.On("Respond", ctx, int64(3), req).
		Return(&complaint.Complaint{ID: 3, Status: complaint.StatusResolved}, nil).Once()

	c, err := svc.UpdateComplaint(ctx, 3, req)
	require.NoError(t, err)
	assert.Equal(t, complaint.StatusResolved, c.Status)
	m.complaints.AssertExpectations(t)
}
