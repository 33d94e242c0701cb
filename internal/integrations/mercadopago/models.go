package mercadopago

import "encoding/json"

// ReservationDraft черновик брони, который едет в metadata преференции и
// возвращается провайдером вместе с платежом. Ключи snake_case: Mercado Pago
// приводит ключи metadata к нижнему регистру.
type ReservationDraft struct {
	CustomerName  string  `json:"nombre_cliente"`
	CustomerEmail string  `json:"email_cliente"`
	CustomerPhone string  `json:"telefono_cliente"`
	RoomID        int64   `json:"habitacion_id"`
	Adults        int     `json:"num_adultos"`
	Children      int     `json:"num_ninos"`
	CheckIn       string  `json:"fecha_check_in"`  // YYYY-MM-DD
	CheckOut      string  `json:"fecha_check_out"` // YYYY-MM-DD
	TotalPrice    float64 `json:"precio_total"`
	Correlation   string  `json:"preferencia_temp_id"` // локальный корреляционный токен
}

// IsComplete проверяет, что в metadata есть всё необходимое для создания брони
func (d *ReservationDraft) IsComplete() bool {
	return d.CustomerName != "" &&
		d.CustomerEmail != "" &&
		d.RoomID > 0 &&
		d.CheckIn != "" &&
		d.CheckOut != "" &&
		d.TotalPrice > 0
}

// preferenceItem позиция в преференции
type preferenceItem struct {
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CurrencyID string  `json:"currency_id"`
}

// backURLs адреса возврата плательщика
type backURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// preferenceRequest тело запроса POST /checkout/preferences
type preferenceRequest struct {
	Items               []preferenceItem `json:"items"`
	BackURLs            backURLs         `json:"back_urls"`
	AutoReturn          string           `json:"auto_return"`
	NotificationURL     string           `json:"notification_url"`
	Metadata            ReservationDraft `json:"metadata"`
	StatementDescriptor string           `json:"statement_descriptor"`
	ExternalReference   string           `json:"external_reference"`
}

// Preference созданная преференция (intent). InitPoint — URL для редиректа плательщика.
type Preference struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// Payer плательщик
type Payer struct {
	Email string `json:"email"`
}

// Payment платёж на стороне провайдера (ответ GET /v1/payments/{id})
type Payment struct {
	ID                json.Number      `json:"id"`
	Status            string           `json:"status"`
	StatusDetail      string           `json:"status_detail"`
	PreferenceID      string           `json:"preference_id"`
	ExternalReference string           `json:"external_reference"`
	TransactionAmount float64          `json:"transaction_amount"`
	DateApproved      *string          `json:"date_approved"`
	PaymentMethodID   string           `json:"payment_method_id"`
	PaymentTypeID     string           `json:"payment_type_id"`
	Payer             Payer            `json:"payer"`
	Metadata          ReservationDraft `json:"metadata"`
}

// WebhookNotification уведомление провайдера о смене состояния платежа
type WebhookNotification struct {
	Type string `json:"type"`
	Data struct {
		ID json.Number `json:"id"`
	} `json:"data"`
}

// errorResponse тело ошибки провайдера
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
}
