package decide_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AuditoriumService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AuditoriumService/internal/infra/storage/booking"
)

// UseCase use case принятия решения по заявке на бронирование
// Статусная модель: pending -> approved | rejected
// Повторное решение по уже решённой заявке не блокируется: статус
// перезаписывается и подателю уходит ещё одно уведомление
type UseCase struct {
	bookingRepo      BookingRepository
	notificationRepo NotificationRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	notificationRepo NotificationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет принятие решения: загрузка заявки, смена статуса,
// отправка уведомления подателю. Смена статуса и вставка уведомления
// выполняются в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DecideBooking: booking_id=%d, decision=%s", req.BookingID, req.Decision)

	// 1. Валидация решения
	decision, err := parseDecision(req.Decision)
	if err != nil {
		uc.logger.Warn("DecideBooking: invalid decision %q for booking_id=%d", req.Decision, req.BookingID)
		return nil, err
	}

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	var message string

	// 2. Решение и уведомление в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем заявку (с блокировкой строки внутри транзакции)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("DecideBooking: booking_id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("DecideBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.IsDecided() {
			uc.logger.Warn("DecideBooking: booking_id=%d already decided (status=%s), overwriting",
				req.BookingID, booking.Status)
		}

		// 2.2. Причина хранится только для отклонённых заявок
		var reason *string
		if decision == domain.StatusRejected {
			reason = req.Reason
		}

		if err := uc.bookingRepo.UpdateDecision(txCtx, req.BookingID, decision, reason); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("DecideBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		// 2.3. Уведомляем подателя заявки
		// Причина отклонения в текст уведомления не включается
		message = buildMessage(booking, decision)

		notification := &domain.Notification{
			UserEmail: booking.RequestedBy,
			Message:   message,
		}

		if _, err := uc.notificationRepo.Insert(txCtx, notification); err != nil {
			uc.logger.Error("DecideBooking: failed to insert notification for booking id=%d: %v",
				req.BookingID, err)
			return fmt.Errorf("%w: failed to insert notification: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("DecideBooking: booking_id=%d decided as %s, notification sent", req.BookingID, decision)

	return &Response{
		BookingID: req.BookingID,
		Status:    string(decision),
		Message:   message,
	}, nil
}

// parseDecision валидирует и конвертирует решение в статус
func parseDecision(decision string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(decision) {
	case domain.StatusApproved:
		return domain.StatusApproved, nil
	case domain.StatusRejected:
		return domain.StatusRejected, nil
	default:
		return "", ErrInvalidDecision
	}
}

// buildMessage формирует текст уведомления о решении
func buildMessage(booking *domain.BookingRequest, decision domain.BookingStatus) string {
	date := booking.EventDate.Format(domain.NotificationDateFormat)

	if decision == domain.StatusApproved {
		return fmt.Sprintf("Your booking '%s' on %s has been approved.", booking.EventName, date)
	}
	return fmt.Sprintf("Your booking '%s' on %s has been rejected.", booking.EventName, date)
}
