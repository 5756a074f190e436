package get_slots

import (
	"time"

	"github.com/m04kA/SMC-AuditoriumService/internal/domain"
)

// Response модель ответа с календарём доступности
// Ровно domain.CalendarWindowDays записей, начиная с сегодняшнего дня
type Response struct {
	Days []domain.CalendarDay
}

// windowBounds возвращает границы окна календаря [today, today+days-1]
// Время обнуляется, чтобы сравнивать только даты
func windowBounds(now time.Time, days int) (time.Time, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today, today.AddDate(0, 0, days-1)
}
