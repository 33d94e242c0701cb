package get_guest

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/guests/models"
)

type GuestsService interface {
	GetByID(ctx context.Context, id int64) (*models.GuestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
