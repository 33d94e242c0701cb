package process_payment_webhook

import "github.com/m04kA/SMC-HotelService/internal/domain"

// Request модель запроса на обработку webhook-уведомления
type Request struct {
	Type      string // Тип уведомления ("payment" обрабатывается, остальные игнорируются)
	PaymentID string // ID платежа в Mercado Pago
}

// Response модель результата обработки уведомления
type Response struct {
	Processed   bool                // true, если из платежа была создана бронь
	Reservation *domain.Reservation // Созданная бронь (nil, если обработка не потребовалась)
}
