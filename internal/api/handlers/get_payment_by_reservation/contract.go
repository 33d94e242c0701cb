package get_payment_by_reservation

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/payments/models"
)

type PaymentsService interface {
	GetByReservationID(ctx context.Context, reservationID int64) (*models.PaymentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
