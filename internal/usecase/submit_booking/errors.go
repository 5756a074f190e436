package submit_booking

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствии обязательных полей заявки
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrSlotConflict возвращается политикой конфликтов при пересечении интервалов
	// Дефолтная политика AllowAllPolicy эту ошибку никогда не возвращает
	ErrSlotConflict = errors.New("submit_booking: requested interval conflicts with an approved booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
