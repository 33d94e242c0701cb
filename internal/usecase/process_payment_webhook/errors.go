package process_payment_webhook

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда платёж не найден у провайдера
	ErrPaymentNotFound = errors.New("process_payment_webhook: payment not found at provider")

	// ErrUnknownPreference возвращается, когда преференция платежа неизвестна локальному регистру
	ErrUnknownPreference = errors.New("process_payment_webhook: unknown preference")

	// ErrMissingMetadata возвращается, когда в платеже нет полного черновика брони
	ErrMissingMetadata = errors.New("process_payment_webhook: payment metadata is missing or incomplete")

	// ErrRoomConflict возвращается, когда номер из оплаченного черновика уже занят
	ErrRoomConflict = errors.New("process_payment_webhook: room is already reserved for these dates")

	// ErrCodeGenerationExhausted возвращается, когда не удалось сгенерировать уникальный код
	ErrCodeGenerationExhausted = errors.New("process_payment_webhook: failed to generate unique reservation code")

	// ErrUpstream возвращается при ошибках провайдера платежей
	ErrUpstream = errors.New("process_payment_webhook: payment provider error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("process_payment_webhook: internal error")
)
