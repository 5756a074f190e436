package notifications

import (
	"context"

	"github.com/m04kA/SMC-AuditoriumService/internal/domain"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Notification, error)
	ListUnreadByRecipient(ctx context.Context, userEmail string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
