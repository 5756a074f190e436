package submit_booking

import (
	"time"

	"github.com/m04kA/SMC-AuditoriumService/pkg/types"
)

// Request модель запроса на подачу заявки на бронирование
type Request struct {
	EventName string           // Название мероприятия
	EventType string           // Тип мероприятия (собрание, концерт, ...)
	EventDate time.Time        // Дата мероприятия (без времени)
	StartTime types.TimeString // Время начала ("14:00")
	EndTime   types.TimeString // Время окончания ("16:00")
	Attendees int              // Ожидаемое число участников
	Equipment *string          // Требуемое оборудование (опционально)
	Notes     *string          // Заметки (опционально)

	// RequestedBy идентификатор подателя заявки (email)
	// Заполняется из контекста аутентификации, не из тела запроса
	RequestedBy string
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID          int64
	EventName   string
	EventType   string
	EventDate   time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Attendees   int
	Equipment   *string
	Notes       *string
	RequestedBy string
	Status      string

	CreatedAt time.Time
	UpdatedAt time.Time
}
