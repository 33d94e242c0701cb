package get_payment

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/payments/models"
)

type PaymentsService interface {
	QueryPayment(ctx context.Context, paymentID string) (*models.ProviderPaymentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
