package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модель запроса на создание брони
type Request struct {
	CustomerName  string    // Имя клиента
	CustomerEmail string    // Email клиента
	CustomerPhone string    // Телефон клиента
	RoomID        int64     // ID номера
	Adults        int       // Количество взрослых
	Children      int       // Количество детей
	CheckIn       time.Time // Дата заезда
	CheckOut      time.Time // Дата выезда
	TotalPrice    float64   // Итоговая цена
}

// Response модель ответа с созданной бронью
type Response struct {
	Reservation *domain.Reservation
}
