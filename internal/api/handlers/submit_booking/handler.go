package submit_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AuditoriumService/internal/api/handlers"
	"github.com/m04kA/SMC-AuditoriumService/internal/api/middleware"
	submitBooking "github.com/m04kA/SMC-AuditoriumService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgMissingUserEmail   = "отсутствует идентификатор пользователя"
	msgSlotConflict       = "интервал пересекается с уже одобренным бронированием"
	msgInvalidInput       = "не заполнены обязательные поля заявки"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Личность подателя заявки берём из контекста (middleware Auth)
	requestedBy, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user email")
		handlers.RespondUnauthorized(w, msgMissingUserEmail)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(requestedBy)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: requested_by=%s, error=%v", requestedBy, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, submitBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: requested_by=%s, date=%s", requestedBy, req.EventDate)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		default:
			h.logger.Error("POST /bookings - Failed to submit booking: requested_by=%s, error=%v",
				requestedBy, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking submitted successfully: booking_id=%d, requested_by=%s",
		result.ID, requestedBy)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
