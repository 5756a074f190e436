package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// NotificationDateFormat формат даты в тексте уведомления ("Mar 10, 2025")
	NotificationDateFormat = "Jan 2, 2006"
)

// CalendarWindowDays размер окна календаря доступности (сегодня + 29 дней)
const CalendarWindowDays = 30

// Business validation constants
const (
	MaxEventNameLength = 200
	MaxNotesLength     = 500
	MaxReasonLength    = 500
)

// DecidedStatuses терминальные статусы бронирования
// Переходов из них по бизнес-процессу не предусмотрено
var DecidedStatuses = []BookingStatus{
	StatusApproved,
	StatusRejected,
}

// OverviewStatuses статусы, попадающие в общий список бронирований
var OverviewStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}
