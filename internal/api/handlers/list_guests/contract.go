package list_guests

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/guests/models"
)

type GuestsService interface {
	List(ctx context.Context) (*models.GuestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
