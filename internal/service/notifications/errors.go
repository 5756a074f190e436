package notifications

import "errors"

var (
	// ErrNotificationNotFound возвращается, когда уведомление не найдено
	ErrNotificationNotFound = errors.New("notifications service: notification not found")

	// ErrNotOwner возвращается при включённой проверке владельца,
	// когда уведомление пытается пометить прочитанным не его получатель
	ErrNotOwner = errors.New("notifications service: notification belongs to another recipient")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("notifications service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("notifications service: internal error")
)
