package domain

import "time"

// Guest запись о постояльце (регистрационная карточка на ресепшене)
type Guest struct {
	ID          int64
	Name        string
	Document    string // DNI / паспорт
	Age         int
	Nationality string
	Phone       string
	CheckIn     time.Time
	CheckOut    time.Time
	RoomLabel   string // номер комнаты со стойки регистрации, свободный текст
	Signature   string // подпись, base64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GuestUpdate частичное обновление карточки; nil-поля не меняются
type GuestUpdate struct {
	Name        *string
	Document    *string
	Age         *int
	Nationality *string
	Phone       *string
	CheckIn     *time.Time
	CheckOut    *time.Time
	RoomLabel   *string
	Signature   *string
}
