package domain

import (
	"time"

	"github.com/m04kA/SMC-AuditoriumService/pkg/types"
)

// DayStatus represents the availability of a single calendar day
type DayStatus string

const (
	DayAvailable DayStatus = "available"
	DayBooked    DayStatus = "booked"
)

// TimeRange booked interval within a day, [start, end) by convention
type TimeRange struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// CalendarDay is one entry of the derived availability calendar
// A day is booked iff at least one approved booking falls on its date
type CalendarDay struct {
	Date     time.Time
	Status   DayStatus
	Bookings []TimeRange
}

// DayBookings группировка интервалов одобренных бронирований по дате ("YYYY-MM-DD")
type DayBookings map[string][]TimeRange
