package submit_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AuditoriumService/internal/domain"
	"github.com/m04kA/SMC-AuditoriumService/pkg/types"
)

type fakeBookingRepo struct {
	approved  []*domain.BookingRequest
	listErr   error
	createErr error

	created *domain.BookingRequest
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.BookingRequest) (*domain.BookingRequest, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = booking
	out := *booking
	out.ID = 1
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	return &out, nil
}

func (f *fakeBookingRepo) ListApprovedByDate(_ context.Context, _ time.Time) ([]*domain.BookingRequest, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.approved, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		EventName:   "Spring Concert",
		EventType:   "concert",
		EventDate:   time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC),
		StartTime:   "14:00",
		EndTime:     "16:00",
		Attendees:   200,
		RequestedBy: "teacher@school.edu",
	}
}

func approvedAt(start, end types.TimeString) *domain.BookingRequest {
	return &domain.BookingRequest{
		EventName: "Existing",
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusApproved,
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, AllowAllPolicy{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "teacher@school.edu", resp.RequestedBy)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
}

func TestExecute_AllowAllPolicyPermitsOverlap(t *testing.T) {
	// Пересечение с одобренной заявкой не блокирует подачу
	repo := &fakeBookingRepo{
		approved: []*domain.BookingRequest{approvedAt("13:00", "15:00")},
	}
	uc := NewUseCase(repo, AllowAllPolicy{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
}

func TestExecute_RejectOverlapPolicyBlocksOverlap(t *testing.T) {
	repo := &fakeBookingRepo{
		approved: []*domain.BookingRequest{approvedAt("13:00", "15:00")},
	}
	uc := NewUseCase(repo, RejectOverlapPolicy{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, repo.created)
}

func TestExecute_RejectOverlapPolicyAllowsAdjacentIntervals(t *testing.T) {
	// Конец одного интервала равен началу другого - это не пересечение
	repo := &fakeBookingRepo{
		approved: []*domain.BookingRequest{approvedAt("12:00", "14:00"), approvedAt("16:00", "18:00")},
	}
	uc := NewUseCase(repo, RejectOverlapPolicy{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"missing event name", func(req *Request) { req.EventName = "" }},
		{"missing event type", func(req *Request) { req.EventType = "" }},
		{"missing event date", func(req *Request) { req.EventDate = time.Time{} }},
		{"missing start time", func(req *Request) { req.StartTime = "" }},
		{"missing end time", func(req *Request) { req.EndTime = "" }},
		{"malformed start time", func(req *Request) { req.StartTime = "2pm" }},
		{"malformed end time", func(req *Request) { req.EndTime = "25:00" }},
		{"negative attendees", func(req *Request) { req.Attendees = -1 }},
		{"missing requester", func(req *Request) { req.RequestedBy = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{}
			uc := NewUseCase(repo, AllowAllPolicy{}, nopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.created)
		})
	}
}

func TestExecute_EndBeforeStartAccepted(t *testing.T) {
	// Порядок интервала не проверяется: заявка уходит на ручное рассмотрение
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, AllowAllPolicy{}, nopLogger{})

	req := validRequest()
	req.StartTime = "16:00"
	req.EndTime = "14:00"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
}

func TestExecute_RepositoryErrors(t *testing.T) {
	t.Run("list approved fails", func(t *testing.T) {
		repo := &fakeBookingRepo{listErr: errors.New("connection refused")}
		uc := NewUseCase(repo, AllowAllPolicy{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("create fails", func(t *testing.T) {
		repo := &fakeBookingRepo{createErr: errors.New("connection refused")}
		uc := NewUseCase(repo, AllowAllPolicy{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
