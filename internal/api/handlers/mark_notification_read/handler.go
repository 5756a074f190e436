package mark_notification_read

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AuditoriumService/internal/api/handlers"
	"github.com/m04kA/SMC-AuditoriumService/internal/api/middleware"
	"github.com/m04kA/SMC-AuditoriumService/internal/service/notifications"
)

const (
	msgInvalidNotificationID = "некорректный ID уведомления"
	msgMissingUserEmail      = "отсутствует идентификатор пользователя"
	msgNotFound              = "уведомление не найдено"
	msgForbidden             = "уведомление адресовано другому получателю"
	msgMarkedRead            = "уведомление помечено прочитанным"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/notifications/{notificationId}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	notificationIDStr := vars["notificationId"]

	notificationID, err := strconv.ParseInt(notificationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /notifications/{id}/read - Invalid notification ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	callerEmail, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		h.logger.Warn("PATCH /notifications/{id}/read - Missing user email")
		handlers.RespondUnauthorized(w, msgMissingUserEmail)
		return
	}

	err = h.service.MarkRead(r.Context(), notificationID, callerEmail)
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrNotificationNotFound):
			h.logger.Warn("PATCH /notifications/{id}/read - Notification not found: notification_id=%d",
				notificationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, notifications.ErrNotOwner):
			h.logger.Warn("PATCH /notifications/{id}/read - Not owner: notification_id=%d, caller=%s",
				notificationID, callerEmail)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PATCH /notifications/{id}/read - Failed to mark read: notification_id=%d, error=%v",
				notificationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /notifications/{id}/read - Notification marked read: notification_id=%d, caller=%s",
		notificationID, callerEmail)
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgMarkedRead})
}
