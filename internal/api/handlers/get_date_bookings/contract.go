package get_date_bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AuditoriumService/internal/service/bookings/models"
)

type BookingService interface {
	GetBookingsForDate(ctx context.Context, date time.Time) (*models.DateBookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
