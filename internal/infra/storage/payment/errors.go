package payment

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда платёж не найден
	ErrPaymentNotFound = errors.New("payment.repository: payment not found")

	// ErrDuplicatePreference возвращается при нарушении уникальности preference_id
	ErrDuplicatePreference = errors.New("payment.repository: preference already registered")

	// ErrAlreadyLinked возвращается, когда платёж уже связан с бронью.
	// На этом сравнении-с-обменом держится идемпотентность webhook-обработчика.
	ErrAlreadyLinked = errors.New("payment.repository: payment already linked to a reservation")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("payment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("payment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("payment.repository: failed to scan row")
)
