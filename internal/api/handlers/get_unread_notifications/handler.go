package get_unread_notifications

import (
	"net/http"

	"github.com/m04kA/SMC-AuditoriumService/internal/api/handlers"
	"github.com/m04kA/SMC-AuditoriumService/internal/api/middleware"
)

const (
	msgMissingUserEmail = "отсутствует идентификатор пользователя"
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

// Handle GET /api/v1/notifications/unread
// Выборка всегда ограничена личностью вызывающего из контекста
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userEmail, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		h.logger.Warn("GET /notifications/unread - Missing user email")
		handlers.RespondUnauthorized(w, msgMissingUserEmail)
		return
	}

	result, err := h.service.GetUnread(r.Context(), userEmail)
	if err != nil {
		h.logger.Error("GET /notifications/unread - Failed to get notifications: user=%s, error=%v",
			userEmail, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /notifications/unread - Notifications retrieved successfully: user=%s, count=%d",
		userEmail, len(result.Notifications))
	handlers.RespondJSON(w, http.StatusOK, result)
}
