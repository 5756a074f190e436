package submit_booking

import "fmt"

// validateRequest валидирует обязательные поля заявки
// Проверяется только наличие значений: порядок start/end и попадание даты
// в будущее не проверяются, заявка уходит на ручное рассмотрение завучу
func validateRequest(req *Request) error {
	if req.EventName == "" {
		return fmt.Errorf("%w: eventName is required", ErrInvalidInput)
	}

	if req.EventType == "" {
		return fmt.Errorf("%w: eventType is required", ErrInvalidInput)
	}

	if req.EventDate.IsZero() {
		return fmt.Errorf("%w: eventDate is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if req.Attendees < 0 {
		return fmt.Errorf("%w: attendees must be non-negative", ErrInvalidInput)
	}

	if req.RequestedBy == "" {
		return fmt.Errorf("%w: requestedBy is required", ErrInvalidInput)
	}

	return nil
}
