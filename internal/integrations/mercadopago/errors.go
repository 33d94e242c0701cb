package mercadopago

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда провайдер не знает такой платёж
	ErrPaymentNotFound = errors.New("mercadopago client: payment not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mercadopago client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("mercadopago client: invalid response")

	// ErrUnavailable возвращается, когда circuit breaker открыт и вызовы
	// к провайдеру временно не выполняются
	ErrUnavailable = errors.New("mercadopago client: provider unavailable")
)
