package list_pending

import (
	"net/http"

	"github.com/m04kA/SMC-AuditoriumService/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/pending
// Очередь заявок на рассмотрение завучем
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPending(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings/pending - Failed to list pending bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/pending - Pending bookings listed successfully: count=%d",
		len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
