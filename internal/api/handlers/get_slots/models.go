package get_slots

import (
	"github.com/m04kA/SMC-AuditoriumService/internal/domain"
	getSlots "github.com/m04kA/SMC-AuditoriumService/internal/usecase/get_slots"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Days []CalendarDay `json:"days"`
}

// CalendarDay одна запись календаря доступности
type CalendarDay struct {
	Date     string      `json:"date"`   // "2025-03-10"
	Status   string      `json:"status"` // "available" | "booked"
	Bookings []TimeRange `json:"bookings"`
}

// TimeRange занятый интервал внутри дня
type TimeRange struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *CalendarResponse {
	days := make([]CalendarDay, len(resp.Days))
	for i, day := range resp.Days {
		bookings := make([]TimeRange, len(day.Bookings))
		for j, booking := range day.Bookings {
			bookings[j] = TimeRange{
				StartTime: booking.StartTime.String(),
				EndTime:   booking.EndTime.String(),
			}
		}

		days[i] = CalendarDay{
			Date:     day.Date.Format(domain.DateFormat),
			Status:   string(day.Status),
			Bookings: bookings,
		}
	}

	return &CalendarResponse{Days: days}
}
