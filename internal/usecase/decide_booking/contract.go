package decide_booking

import (
	"context"

	"github.com/m04kA/SMC-AuditoriumService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error)
	UpdateDecision(ctx context.Context, id int64, status domain.BookingStatus, reason *string) error
}

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Insert(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)
}

// TransactionManager интерфейс для управления транзакциями
// Обновление статуса и вставка уведомления выполняются в одной транзакции,
// чтобы заявка не могла оказаться решённой без уведомления подателю
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
