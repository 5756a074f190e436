package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AuditoriumService/internal/domain"
	"github.com/m04kA/SMC-AuditoriumService/internal/service/bookings/models"
)

// Service сервис списков заявок на бронирование
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// ListPending получает все заявки, ожидающие решения
// Используется завучем для рассмотрения очереди заявок
func (s *Service) ListPending(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("ListPending: fetching pending bookings")

	bookings, err := s.bookingRepo.ListByStatuses(ctx, []domain.BookingStatus{domain.StatusPending})
	if err != nil {
		s.logger.Error("ListPending: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPending - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListPending: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// ListOverview получает заявки для общего обзора: одобренные и ожидающие решения
func (s *Service) ListOverview(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("ListOverview: fetching approved and pending bookings")

	bookings, err := s.bookingRepo.ListByStatuses(ctx, domain.OverviewStatuses)
	if err != nil {
		s.logger.Error("ListOverview: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOverview - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListOverview: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetBookingsForDate получает одобренные заявки на конкретную дату
// Детализация одного дня календаря доступности, сортировка по времени начала
func (s *Service) GetBookingsForDate(ctx context.Context, date time.Time) (*models.DateBookingListResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	s.logger.Info("GetBookingsForDate: fetching approved bookings for %s", date.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.ListApprovedByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetBookingsForDate: repository error for date=%s: %v",
			date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetBookingsForDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBookingsForDate: successfully fetched %d bookings for %s",
		len(bookings), date.Format(domain.DateFormat))
	return models.FromDomainDateBookings(date, bookings), nil
}
