package list_pending

import (
	"context"

	"github.com/m04kA/SMC-AuditoriumService/internal/service/bookings/models"
)

type BookingService interface {
	ListPending(ctx context.Context) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
