package rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
	Update(ctx context.Context, id int64, upd domain.RoomUpdate) (*domain.Room, error)
	Delete(ctx context.Context, id int64) error
}

// ReservationRepository интерфейс репозитория броней (для проверки занятости номера)
type ReservationRepository interface {
	CountActiveByRoom(ctx context.Context, roomID int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
