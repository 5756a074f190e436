package domain

import (
	"time"

	"github.com/m04kA/SMC-AuditoriumService/pkg/types"
)

// BookingStatus represents the approval status of a booking request
type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusApproved BookingStatus = "approved"
	StatusRejected BookingStatus = "rejected"
)

// BookingRequest represents a request to use the auditorium for a date/time interval
type BookingRequest struct {
	ID        int64
	EventName string
	EventType string
	EventDate time.Time // дата без времени
	StartTime types.TimeString
	EndTime   types.TimeString
	Attendees int

	Equipment *string
	Notes     *string

	RequestedBy string
	Status      BookingStatus

	// Reason is set only on a transition to rejected
	Reason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the request has not been decided yet
func (b *BookingRequest) IsPending() bool {
	return b.Status == StatusPending
}

// IsDecided returns true if the request has reached a terminal status
func (b *BookingRequest) IsDecided() bool {
	return b.Status == StatusApproved || b.Status == StatusRejected
}

// IsApproved returns true if the request has been approved
func (b *BookingRequest) IsApproved() bool {
	return b.Status == StatusApproved
}

// Interval returns the booked time interval [start, end)
func (b *BookingRequest) Interval() TimeRange {
	return TimeRange{StartTime: b.StartTime, EndTime: b.EndTime}
}
