package get_unread_notifications

import (
	"context"

	"github.com/m04kA/SMC-AuditoriumService/internal/service/notifications/models"
)

type NotificationService interface {
	GetUnread(ctx context.Context, userEmail string) (*models.NotificationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
