package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AuditoriumService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListByStatuses(ctx context.Context, statuses []domain.BookingStatus) ([]*domain.BookingRequest, error)
	ListApprovedByDate(ctx context.Context, date time.Time) ([]*domain.BookingRequest, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
