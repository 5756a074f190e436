package decide_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AuditoriumService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AuditoriumService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AuditoriumService/pkg/ptr"
)

type fakeBookingRepo struct {
	booking   *domain.BookingRequest
	getErr    error
	updateErr error

	updatedStatus domain.BookingStatus
	updatedReason *string
	updateCalls   int
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.BookingRequest, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) UpdateDecision(_ context.Context, _ int64, status domain.BookingStatus, reason *string) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedStatus = status
	f.updatedReason = reason
	return nil
}

type fakeNotificationRepo struct {
	insertErr error
	inserted  []*domain.Notification
}

func (f *fakeNotificationRepo) Insert(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, n)
	return n, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking() *domain.BookingRequest {
	return &domain.BookingRequest{
		ID:          42,
		EventName:   "Founders Day",
		EventType:   "ceremony",
		EventDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   "14:00",
		EndTime:     "16:00",
		Attendees:   120,
		RequestedBy: "teacher@school.edu",
		Status:      domain.StatusPending,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, notifications *fakeNotificationRepo) *UseCase {
	return NewUseCase(bookings, notifications, fakeTxManager{}, nopLogger{})
}

func TestExecute_Approve(t *testing.T) {
	bookings := &fakeBookingRepo{booking: pendingBooking()}
	notifications := &fakeNotificationRepo{}
	uc := newTestUseCase(bookings, notifications)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42, Decision: "approved"})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.BookingID)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, domain.StatusApproved, bookings.updatedStatus)
	assert.Nil(t, bookings.updatedReason)

	require.Len(t, notifications.inserted, 1)
	assert.Equal(t, "teacher@school.edu", notifications.inserted[0].UserEmail)
	assert.Equal(t, "Your booking 'Founders Day' on Mar 10, 2025 has been approved.", notifications.inserted[0].Message)
}

func TestExecute_RejectWithReason(t *testing.T) {
	bookings := &fakeBookingRepo{booking: pendingBooking()}
	notifications := &fakeNotificationRepo{}
	uc := newTestUseCase(bookings, notifications)

	reason := "Hall reserved for exams"
	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42, Decision: "rejected", Reason: &reason})
	require.NoError(t, err)

	assert.Equal(t, "rejected", resp.Status)
	require.NotNil(t, bookings.updatedReason)
	assert.Equal(t, reason, *bookings.updatedReason)

	// Причина хранится в заявке, но в текст уведомления не попадает
	require.Len(t, notifications.inserted, 1)
	assert.Equal(t, "Your booking 'Founders Day' on Mar 10, 2025 has been rejected.", notifications.inserted[0].Message)
	assert.NotContains(t, notifications.inserted[0].Message, reason)
}

func TestExecute_ReasonIgnoredOnApprove(t *testing.T) {
	bookings := &fakeBookingRepo{booking: pendingBooking()}
	notifications := &fakeNotificationRepo{}
	uc := newTestUseCase(bookings, notifications)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		Decision:  "approved",
		Reason:    ptr.Ptr("should not be stored"),
	})
	require.NoError(t, err)

	assert.Nil(t, bookings.updatedReason)
}

func TestExecute_InvalidDecision(t *testing.T) {
	bookings := &fakeBookingRepo{booking: pendingBooking()}
	notifications := &fakeNotificationRepo{}
	uc := newTestUseCase(bookings, notifications)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, Decision: "maybe"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDecision)
	assert.Zero(t, bookings.updateCalls)
	assert.Empty(t, notifications.inserted)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	notifications := &fakeNotificationRepo{}
	uc := newTestUseCase(bookings, notifications)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 999, Decision: "approved"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	// Уведомление не отправляется для несуществующей заявки
	assert.Empty(t, notifications.inserted)
}

func TestExecute_RedecideOverwritesAndNotifiesAgain(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusApproved
	bookings := &fakeBookingRepo{booking: booking}
	notifications := &fakeNotificationRepo{}
	uc := newTestUseCase(bookings, notifications)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42, Decision: "rejected"})
	require.NoError(t, err)

	assert.Equal(t, "rejected", resp.Status)
	assert.Equal(t, domain.StatusRejected, bookings.updatedStatus)
	require.Len(t, notifications.inserted, 1)
	assert.Contains(t, notifications.inserted[0].Message, "has been rejected.")
}

func TestExecute_NotificationInsertFailure(t *testing.T) {
	bookings := &fakeBookingRepo{booking: pendingBooking()}
	notifications := &fakeNotificationRepo{insertErr: errors.New("connection refused")}
	uc := newTestUseCase(bookings, notifications)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, Decision: "approved"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_InvalidBookingID(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeNotificationRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0, Decision: "approved"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
