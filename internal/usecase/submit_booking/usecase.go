package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AuditoriumService/internal/domain"
)

// UseCase use case подачи заявки на бронирование актового зала
type UseCase struct {
	bookingRepo    BookingRepository
	conflictPolicy ConflictPolicy
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	conflictPolicy ConflictPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		conflictPolicy: conflictPolicy,
		logger:         logger,
	}
}

// Execute выполняет подачу заявки: валидация, проверка политики конфликтов,
// сохранение со статусом pending
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: event=%q, date=%s, time=%s-%s, requested_by=%s",
		req.EventName, req.EventDate.Format(domain.DateFormat), req.StartTime, req.EndTime, req.RequestedBy)

	// 1. Валидация входных данных (только наличие полей)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	booking := &domain.BookingRequest{
		EventName:   req.EventName,
		EventType:   req.EventType,
		EventDate:   req.EventDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Attendees:   req.Attendees,
		Equipment:   req.Equipment,
		Notes:       req.Notes,
		RequestedBy: req.RequestedBy,
		Status:      domain.StatusPending,
	}

	// 2. Проверяем политику конфликтов против одобренных заявок на эту дату
	existing, err := uc.bookingRepo.ListApprovedByDate(ctx, req.EventDate)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to list approved bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list approved bookings: %v", ErrInternal, err)
	}

	if err := uc.conflictPolicy.Check(booking, existing); err != nil {
		if errors.Is(err, ErrSlotConflict) {
			uc.logger.Warn("SubmitBooking: conflict policy rejected event=%q on %s",
				req.EventName, req.EventDate.Format(domain.DateFormat))
			return nil, err
		}
		uc.logger.Error("SubmitBooking: conflict policy error: %v", err)
		return nil, fmt.Errorf("%w: conflict policy error: %v", ErrInternal, err)
	}

	// 3. Сохраняем заявку со статусом pending
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitBooking: successfully created booking id=%d", created.ID)

	return &Response{
		ID:          created.ID,
		EventName:   created.EventName,
		EventType:   created.EventType,
		EventDate:   created.EventDate,
		StartTime:   created.StartTime,
		EndTime:     created.EndTime,
		Attendees:   created.Attendees,
		Equipment:   created.Equipment,
		Notes:       created.Notes,
		RequestedBy: created.RequestedBy,
		Status:      string(created.Status),
		CreatedAt:   created.CreatedAt,
		UpdatedAt:   created.UpdatedAt,
	}, nil
}
