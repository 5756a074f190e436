package submit_booking

import "github.com/m04kA/SMC-AuditoriumService/internal/domain"

// AllowAllPolicy политика, допускающая любые пересечения интервалов
// Две заявки на одно и то же время могут быть поданы и независимо одобрены -
// разведение мероприятий по времени остаётся за завучем
type AllowAllPolicy struct{}

// Check всегда разрешает заявку
func (AllowAllPolicy) Check(_ *domain.BookingRequest, _ []*domain.BookingRequest) error {
	return nil
}

// RejectOverlapPolicy политика, отклоняющая заявки с пересечением по времени
// с уже одобренными бронированиями на ту же дату. В текущей конфигурации
// не включена; оставлена как ужесточённый вариант политики
type RejectOverlapPolicy struct{}

// Check возвращает ErrSlotConflict при реальном пересечении интервалов
// Граничные случаи (конец одного = начало другого) пересечением не считаются
func (RejectOverlapPolicy) Check(newBooking *domain.BookingRequest, existingApproved []*domain.BookingRequest) error {
	for _, existing := range existingApproved {
		if existing.StartTime.IsBefore(newBooking.EndTime) && existing.EndTime.IsAfter(newBooking.StartTime) {
			return ErrSlotConflict
		}
	}
	return nil
}
