package decide_booking

// Request модель запроса на принятие решения по заявке
type Request struct {
	BookingID int64   // ID заявки
	Decision  string  // "approved" или "rejected"
	Reason    *string // Причина отклонения (опционально, только для rejected)
}

// Response модель ответа с принятым решением
type Response struct {
	BookingID int64  // ID заявки
	Status    string // Новый статус заявки
	Message   string // Текст отправленного уведомления
}
