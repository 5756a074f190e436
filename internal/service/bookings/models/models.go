package models

import (
	"time"

	"github.com/m04kA/SMC-AuditoriumService/internal/domain"
)

// Response модели

// BookingResponse ответ с данными заявки на бронирование
type BookingResponse struct {
	ID          int64   `json:"id"`
	EventName   string  `json:"eventName"`
	EventType   string  `json:"eventType"`
	EventDate   string  `json:"eventDate"` // "2025-03-10"
	StartTime   string  `json:"startTime"` // "14:00"
	EndTime     string  `json:"endTime"`   // "16:00"
	Attendees   int     `json:"attendees"`
	Equipment   *string `json:"equipment,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	RequestedBy string  `json:"requestedBy"`
	Status      string  `json:"status"`
	Reason      *string `json:"reason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком заявок
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// DateBookingResponse строка детализации одного дня календаря
type DateBookingResponse struct {
	EventName   string `json:"eventName"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Attendees   int    `json:"attendees"`
	RequestedBy string `json:"requestedBy"`
}

// DateBookingListResponse ответ с бронированиями на конкретную дату
type DateBookingListResponse struct {
	Date     string                `json:"date"`
	Bookings []DateBookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.BookingRequest) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		EventName:   b.EventName,
		EventType:   b.EventType,
		EventDate:   b.EventDate.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		Attendees:   b.Attendees,
		Equipment:   b.Equipment,
		Notes:       b.Notes,
		RequestedBy: b.RequestedBy,
		Status:      string(b.Status),
		Reason:      b.Reason,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.BookingRequest) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainDateBookings конвертирует заявки одного дня в DTO детализации
func FromDomainDateBookings(date time.Time, bookings []*domain.BookingRequest) *DateBookingListResponse {
	resp := &DateBookingListResponse{
		Date:     date.Format(domain.DateFormat),
		Bookings: make([]DateBookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		resp.Bookings = append(resp.Bookings, DateBookingResponse{
			EventName:   booking.EventName,
			StartTime:   booking.StartTime.String(),
			EndTime:     booking.EndTime.String(),
			Attendees:   booking.Attendees,
			RequestedBy: booking.RequestedBy,
		})
	}

	return resp
}
