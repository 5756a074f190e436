package notifications

import (
	"context"
	"errors"
	"fmt"

	notificationRepo "github.com/m04kA/SMC-AuditoriumService/internal/infra/storage/notification"
	"github.com/m04kA/SMC-AuditoriumService/internal/service/notifications/models"
)

// Service сервис доставки уведомлений: список непрочитанных и пометка прочитанным
type Service struct {
	notificationRepo NotificationRepository
	enforceOwnership bool
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
// enforceOwnership включает проверку, что уведомление может пометить
// прочитанным только его получатель; по умолчанию проверка выключена,
// и любой аутентифицированный вызов с известным ID проходит
func NewService(notificationRepo NotificationRepository, enforceOwnership bool, logger Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		enforceOwnership: enforceOwnership,
		logger:           logger,
	}
}

// GetUnread получает непрочитанные уведомления получателя (свежие первыми)
func (s *Service) GetUnread(ctx context.Context, userEmail string) (*models.NotificationListResponse, error) {
	if userEmail == "" {
		return nil, fmt.Errorf("%w: userEmail is required", ErrInvalidInput)
	}

	s.logger.Info("GetUnread: fetching unread notifications for %s", userEmail)

	notifications, err := s.notificationRepo.ListUnreadByRecipient(ctx, userEmail)
	if err != nil {
		s.logger.Error("GetUnread: repository error for %s: %v", userEmail, err)
		return nil, fmt.Errorf("%w: GetUnread - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUnread: successfully fetched %d notifications for %s", len(notifications), userEmail)
	return models.FromDomainNotificationList(notifications), nil
}

// MarkRead помечает уведомление прочитанным
// Повторная пометка не является ошибкой: строка просто перестаёт попадать
// в выборку непрочитанных, read_at сдвигается на момент последнего вызова
func (s *Service) MarkRead(ctx context.Context, notificationID int64, callerEmail string) error {
	if notificationID <= 0 {
		return fmt.Errorf("%w: notificationID must be positive", ErrInvalidInput)
	}

	s.logger.Info("MarkRead: marking notification id=%d read by %s", notificationID, callerEmail)

	if s.enforceOwnership {
		notification, err := s.notificationRepo.GetByID(ctx, notificationID)
		if err != nil {
			if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
				s.logger.Warn("MarkRead: notification id=%d not found", notificationID)
				return ErrNotificationNotFound
			}
			s.logger.Error("MarkRead: repository error for id=%d: %v", notificationID, err)
			return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
		}

		if notification.UserEmail != callerEmail {
			s.logger.Warn("MarkRead: notification id=%d belongs to %s, caller is %s",
				notificationID, notification.UserEmail, callerEmail)
			return ErrNotOwner
		}
	}

	if err := s.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkRead: notification id=%d not found", notificationID)
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for id=%d: %v", notificationID, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkRead: notification id=%d marked read", notificationID)
	return nil
}
