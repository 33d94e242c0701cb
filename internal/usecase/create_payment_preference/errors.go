package create_payment_preference

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_payment_preference: room not found")

	// ErrUpstream возвращается при ошибках провайдера платежей
	ErrUpstream = errors.New("create_payment_preference: payment provider error")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_payment_preference: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_payment_preference: internal error")
)
