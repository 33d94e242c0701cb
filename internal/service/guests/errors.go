package guests

import "errors"

var (
	// ErrGuestNotFound возвращается, когда постоялец не найден
	ErrGuestNotFound = errors.New("guest not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
