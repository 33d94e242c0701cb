package create_payment_preference

import "time"

// Request модель запроса на создание платёжной преференции
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

// Response модель ответа с созданной преференцией
type Response struct {
	PreferenceID string // ID преференции у провайдера
	InitPoint    string // URL чекаута для редиректа клиента
}
