package process_payment_webhook

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-HotelService/internal/integrations/mercadopago"
)

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	GetByPreferenceID(ctx context.Context, preferenceID string) (*domain.Payment, error)
	LinkReservation(ctx context.Context, paymentID, reservationID int64, upd paymentRepo.ProviderUpdate) error
	UpdateStatus(ctx context.Context, paymentID int64, upd paymentRepo.ProviderUpdate) error
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetOverlapping(ctx context.Context, checkIn, checkOut time.Time) ([]*domain.Reservation, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// MercadoPagoClient интерфейс клиента Mercado Pago
type MercadoPagoClient interface {
	GetPayment(ctx context.Context, paymentID string) (*mercadopago.Payment, []byte, error)
}

// Mailer интерфейс почтового клиента
type Mailer interface {
	SendReservationConfirmation(res domain.Reservation, roomTitle string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
