package get_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AuditoriumService/internal/domain"
)

// UseCase use case построения календаря доступности актового зала
// Календарь не хранится: один батч-запрос одобренных заявок за окно,
// затем группировка в памяти. Результат - консистентный снимок на момент чтения
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит календарь доступности на ближайшие domain.CalendarWindowDays дней
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	from, to := windowBounds(now, domain.CalendarWindowDays)

	uc.logger.Info("GetSlots: building calendar for %s..%s",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	// 1. Один батч-запрос всех одобренных заявок в окне
	bookings, err := uc.bookingRepo.ListApprovedBetween(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetSlots: failed to list approved bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list approved bookings: %v", ErrInternal, err)
	}

	// 2. Группировка по дате и построение календаря
	grouped := groupByDate(bookings)
	days := buildCalendar(from, domain.CalendarWindowDays, grouped)

	uc.logger.Info("GetSlots: calendar built, %d approved bookings across %d booked days",
		len(bookings), len(grouped))

	return &Response{Days: days}, nil
}
