package create_payment_preference

import (
	"context"

	createPaymentPreference "github.com/m04kA/SMC-HotelService/internal/usecase/create_payment_preference"
)

type CreatePaymentPreferenceUseCase interface {
	Execute(ctx context.Context, req *createPaymentPreference.Request) (*createPaymentPreference.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
