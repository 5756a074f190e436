package get_slots

import (
	"time"

	"github.com/m04kA/SMC-AuditoriumService/internal/domain"
)

// groupByDate группирует интервалы одобренных заявок по дате мероприятия
// Ключ - дата в формате YYYY-MM-DD, построенная из календарных полей даты
// (без конвертации таймзон, чтобы не получить сдвиг на сутки для date-only значений)
func groupByDate(bookings []*domain.BookingRequest) domain.DayBookings {
	grouped := make(domain.DayBookings)

	for _, booking := range bookings {
		key := booking.EventDate.Format(domain.DateFormat)
		grouped[key] = append(grouped[key], booking.Interval())
	}

	return grouped
}

// buildCalendar строит календарь доступности на days дней, начиная с today
// День помечается booked, если на него есть хотя бы одна одобренная заявка
func buildCalendar(today time.Time, days int, grouped domain.DayBookings) []domain.CalendarDay {
	calendar := make([]domain.CalendarDay, days)

	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, i)
		key := day.Format(domain.DateFormat)

		status := domain.DayAvailable
		bookings := grouped[key]
		if len(bookings) > 0 {
			status = domain.DayBooked
		} else {
			bookings = []domain.TimeRange{}
		}

		calendar[i] = domain.CalendarDay{
			Date:     day,
			Status:   status,
			Bookings: bookings,
		}
	}

	return calendar
}
