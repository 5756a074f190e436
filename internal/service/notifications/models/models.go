package models

import (
	"time"

	"github.com/m04kA/SMC-AuditoriumService/internal/domain"
)

// NotificationResponse ответ с данными уведомления
type NotificationResponse struct {
	ID        int64     `json:"id"`
	UserEmail string    `json:"userEmail"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	ReadAt    *string   `json:"readAt,omitempty"` // ISO 8601
}

// NotificationListResponse ответ со списком уведомлений
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// FromDomainNotification конвертирует domain модель в DTO
func FromDomainNotification(n *domain.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}

	resp := &NotificationResponse{
		ID:        n.ID,
		UserEmail: n.UserEmail,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	}

	if n.ReadAt != nil {
		readStr := n.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &readStr
	}

	return resp
}

// FromDomainNotificationList конвертирует список domain моделей в DTO
func FromDomainNotificationList(notifications []*domain.Notification) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(notifications)),
	}

	for _, notification := range notifications {
		if notificationResp := FromDomainNotification(notification); notificationResp != nil {
			resp.Notifications = append(resp.Notifications, *notificationResp)
		}
	}

	return resp
}
