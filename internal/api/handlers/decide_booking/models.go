package decide_booking

import (
	decideBooking "github.com/m04kA/SMC-AuditoriumService/internal/usecase/decide_booking"
)

// DecideBookingRequest HTTP request model
type DecideBookingRequest struct {
	Status string  `json:"status"`           // "approved" или "rejected"
	Reason *string `json:"reason,omitempty"` // только для rejected
}

// DecideBookingResponse HTTP response model
type DecideBookingResponse struct {
	BookingID int64  `json:"bookingId"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *DecideBookingRequest) ToUseCaseRequest(bookingID int64) *decideBooking.Request {
	return &decideBooking.Request{
		BookingID: bookingID,
		Decision:  r.Status,
		Reason:    r.Reason,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *decideBooking.Response) *DecideBookingResponse {
	return &DecideBookingResponse{
		BookingID: resp.BookingID,
		Status:    resp.Status,
		Message:   resp.Message,
	}
}
