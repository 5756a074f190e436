package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AuditoriumService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.BookingRequest) (*domain.BookingRequest, error)
	ListApprovedByDate(ctx context.Context, date time.Time) ([]*domain.BookingRequest, error)
}

// ConflictPolicy политика проверки пересечений с уже одобренными бронированиями
// Вызывается перед сохранением новой заявки; текущая конфигурация сервиса
// использует AllowAllPolicy - пересечения допускаются
type ConflictPolicy interface {
	Check(newBooking *domain.BookingRequest, existingApproved []*domain.BookingRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
