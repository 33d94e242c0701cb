package create_reservation

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrRoomUnavailable возвращается, когда номер занят на выбранные даты
	ErrRoomUnavailable = errors.New("create_reservation: room is not available for these dates")

	// ErrCodeGenerationExhausted возвращается, когда не удалось сгенерировать уникальный код
	ErrCodeGenerationExhausted = errors.New("create_reservation: failed to generate unique reservation code")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
