package submit_booking

import (
	"time"

	"github.com/m04kA/SMC-AuditoriumService/internal/domain"
	submitBooking "github.com/m04kA/SMC-AuditoriumService/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-AuditoriumService/pkg/types"
)

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	EventName string  `json:"eventName"`
	EventType string  `json:"eventType"`
	EventDate string  `json:"eventDate"` // "2025-03-10"
	StartTime string  `json:"startTime"` // "14:00"
	EndTime   string  `json:"endTime"`   // "16:00"
	Attendees int     `json:"attendees"`
	Equipment *string `json:"equipment,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	EventName   string  `json:"eventName"`
	EventType   string  `json:"eventType"`
	EventDate   string  `json:"eventDate"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Attendees   int     `json:"attendees"`
	Equipment   *string `json:"equipment,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	RequestedBy string  `json:"requestedBy"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// requestedBy берётся из контекста аутентификации, не из тела запроса
func (r *SubmitBookingRequest) ToUseCaseRequest(requestedBy string) (*submitBooking.Request, error) {
	eventDate, err := time.Parse(domain.DateFormat, r.EventDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &submitBooking.Request{
		EventName:   r.EventName,
		EventType:   r.EventType,
		EventDate:   eventDate,
		StartTime:   startTime,
		EndTime:     endTime,
		Attendees:   r.Attendees,
		Equipment:   r.Equipment,
		Notes:       r.Notes,
		RequestedBy: requestedBy,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		EventName:   resp.EventName,
		EventType:   resp.EventType,
		EventDate:   resp.EventDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Attendees:   resp.Attendees,
		Equipment:   resp.Equipment,
		Notes:       resp.Notes,
		RequestedBy: resp.RequestedBy,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
