package get_slots

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
	bookings []*domain.BookingRequest
	err      error

	gotFrom time.Time
	gotTo   time.Time
}

func (f *fakeBookingRepo) ListApprovedBetween(_ context.Context, from, to time.Time) ([]*domain.BookingRequest, error) {
	f.gotFrom = from
	f.gotTo = to
	return f.bookings, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func approvedBooking(date time.Time, start, end types.TimeString) *domain.BookingRequest {
	return &domain.BookingRequest{
		EventName: "Event",
		EventDate: date,
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusApproved,
	}
}

func newTestUseCase(repo BookingRepository, now time.Time) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_EmptyCalendarHasThirtyAvailableDays(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Days, domain.CalendarWindowDays)
	for i, day := range resp.Days {
		assert.Equal(t, domain.DayAvailable, day.Status)
		assert.Empty(t, day.Bookings)
		assert.Equal(t, now.AddDate(0, 0, i).Format(domain.DateFormat), day.Date.Format(domain.DateFormat))
	}

	// Окно батч-запроса: [сегодня, сегодня+29]
	assert.Equal(t, "2025-03-01", repo.gotFrom.Format(domain.DateFormat))
	assert.Equal(t, "2025-03-30", repo.gotTo.Format(domain.DateFormat))
}

func TestExecute_ApprovedBookingMarksDayBooked(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	eventDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{
		bookings: []*domain.BookingRequest{
			approvedBooking(eventDate, "14:00", "16:00"),
		},
	}
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Days, domain.CalendarWindowDays)

	day := resp.Days[9]
	assert.Equal(t, "2025-03-10", day.Date.Format(domain.DateFormat))
	assert.Equal(t, domain.DayBooked, day.Status)
	require.Len(t, day.Bookings, 1)
	assert.Equal(t, types.TimeString("14:00"), day.Bookings[0].StartTime)
	assert.Equal(t, types.TimeString("16:00"), day.Bookings[0].EndTime)

	// Остальные дни остаются свободными
	assert.Equal(t, domain.DayAvailable, resp.Days[8].Status)
	assert.Equal(t, domain.DayAvailable, resp.Days[10].Status)
}

func TestExecute_OverlappingBookingsBothListed(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	eventDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	// Пересекающиеся интервалы допустимы: оба попадают в календарь без ошибки
	repo := &fakeBookingRepo{
		bookings: []*domain.BookingRequest{
			approvedBooking(eventDate, "14:00", "16:00"),
			approvedBooking(eventDate, "15:00", "17:00"),
		},
	}
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	day := resp.Days[9]
	assert.Equal(t, domain.DayBooked, day.Status)
	assert.Len(t, day.Bookings, 2)
}

func TestExecute_TimeOfDayDoesNotShiftDateBucket(t *testing.T) {
	// Время в дате мероприятия не влияет на день календаря
	now := time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC)
	eventDate := time.Date(2025, 3, 5, 22, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{
		bookings: []*domain.BookingRequest{
			approvedBooking(eventDate, "20:00", "23:00"),
		},
	}
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	day := resp.Days[4]
	assert.Equal(t, "2025-03-05", day.Date.Format(domain.DateFormat))
	assert.Equal(t, domain.DayBooked, day.Status)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGroupByDate(t *testing.T) {
	d1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	grouped := groupByDate([]*domain.BookingRequest{
		approvedBooking(d1, "09:00", "10:00"),
		approvedBooking(d1, "14:00", "16:00"),
		approvedBooking(d2, "10:00", "11:00"),
	})

	require.Len(t, grouped, 2)
	assert.Len(t, grouped["2025-03-10"], 2)
	assert.Len(t, grouped["2025-03-11"], 1)
}
