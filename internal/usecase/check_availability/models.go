package check_availability

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модель запроса на проверку доступности номеров
type Request struct {
	CheckIn   time.Time // Дата заезда
	CheckOut  time.Time // Дата выезда
	NumPeople int       // Количество гостей (0 - без фильтра по вместимости)
}

// Response модель ответа со свободными номерами
type Response struct {
	Rooms []*domain.Room // Свободные номера, отсортированные по цене
}
