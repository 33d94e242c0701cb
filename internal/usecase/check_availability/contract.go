package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	ListAvailable(ctx context.Context) ([]*domain.Room, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetOverlapping(ctx context.Context, checkIn, checkOut time.Time) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
