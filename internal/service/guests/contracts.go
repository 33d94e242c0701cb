package guests

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// GuestRepository интерфейс репозитория постояльцев
type GuestRepository interface {
	Create(ctx context.Context, g *domain.Guest) (*domain.Guest, error)
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
	List(ctx context.Context) ([]*domain.Guest, error)
	Update(ctx context.Context, id int64, upd domain.GuestUpdate) (*domain.Guest, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
