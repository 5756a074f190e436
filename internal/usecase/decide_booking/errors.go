package decide_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заявка не найдена
	ErrBookingNotFound = errors.New("decide_booking: booking not found")

	// ErrInvalidDecision возвращается, когда решение не approved и не rejected
	ErrInvalidDecision = errors.New("decide_booking: decision must be approved or rejected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("decide_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("decide_booking: internal error")
)
