package domain

import "time"

// PaymentStatus статус платежа на стороне Mercado Pago
type PaymentStatus string

const (
	PaymentPending     PaymentStatus = "pending"
	PaymentApproved    PaymentStatus = "approved"
	PaymentAuthorized  PaymentStatus = "authorized"
	PaymentInProcess   PaymentStatus = "in_process"
	PaymentInMediation PaymentStatus = "in_mediation"
	PaymentRejected    PaymentStatus = "rejected"
	PaymentCancelled   PaymentStatus = "cancelled"
	PaymentRefunded    PaymentStatus = "refunded"
	PaymentChargedBack PaymentStatus = "charged_back"
)

// Payment represents a payment tracked against the provider
type Payment struct {
	ID            int64
	MPPaymentID   *string // ID платежа в Mercado Pago, известен только после webhook
	PreferenceID  string  // ID преференции (intent), уникальный
	ReservationID *int64  // заполняется один раз при создании брони из оплаты
	Amount        float64
	Status        PaymentStatus
	StatusDetail  *string
	PaymentMethod *string
	PaymentType   *string
	PayerEmail    *string
	RawData       []byte // полный ответ провайдера, хранится для аудита

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsReconciled returns true if a reservation has already been created from this payment
func (p *Payment) IsReconciled() bool {
	return p.ReservationID != nil
}

// ValidPaymentStatus returns true if s is one of the provider statuses we track
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentApproved, PaymentAuthorized, PaymentInProcess,
		PaymentInMediation, PaymentRejected, PaymentCancelled, PaymentRefunded,
		PaymentChargedBack:
		return true
	default:
		return false
	}
}
