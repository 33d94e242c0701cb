package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/integrations/mercadopago"
)

// PaymentResponse ответ с данными платежа из локального регистра
type PaymentResponse struct {
	ID            int64     `json:"id"`
	MPPaymentID   *string   `json:"mercadoPagoId,omitempty"`
	ReservationID *int64    `json:"reservaId,omitempty"`
	PreferenceID  string    `json:"preferenciaId"`
	Amount        float64   `json:"monto"`
	Status        string    `json:"estado"`
	StatusDetail  *string   `json:"estadoDetalle,omitempty"`
	PaymentMethod *string   `json:"metodoPago,omitempty"`
	PaymentType   *string   `json:"tipoPago,omitempty"`
	PayerEmail    *string   `json:"emailPagador,omitempty"`
	CreatedAt     time.Time `json:"fechaCreacion"`
	UpdatedAt     time.Time `json:"fechaActualizacion"`
}

// ProviderPaymentResponse состояние платежа у провайдера
type ProviderPaymentResponse struct {
	MPPaymentID   string  `json:"mercadoPagoId"`
	Status        string  `json:"estado"`
	StatusDetail  string  `json:"estadoDetalle,omitempty"`
	Amount        float64 `json:"monto"`
	PaymentMethod string  `json:"metodoPago,omitempty"`
	PaymentType   string  `json:"tipoPago,omitempty"`
	PayerEmail    string  `json:"emailPagador,omitempty"`
	DateApproved  *string `json:"fechaAprobacion,omitempty"`
}

// FromDomainPayment конвертирует domain модель в DTO
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}

	return &PaymentResponse{
		ID:            p.ID,
		MPPaymentID:   p.MPPaymentID,
		ReservationID: p.ReservationID,
		PreferenceID:  p.PreferenceID,
		Amount:        p.Amount,
		Status:        string(p.Status),
		StatusDetail:  p.StatusDetail,
		PaymentMethod: p.PaymentMethod,
		PaymentType:   p.PaymentType,
		PayerEmail:    p.PayerEmail,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// FromProviderPayment конвертирует ответ провайдера в DTO
func FromProviderPayment(p *mercadopago.Payment) *ProviderPaymentResponse {
	if p == nil {
		return nil
	}

	return &ProviderPaymentResponse{
		MPPaymentID:   p.ID.String(),
		Status:        p.Status,
		StatusDetail:  p.StatusDetail,
		Amount:        p.TransactionAmount,
		PaymentMethod: p.PaymentMethodID,
		PaymentType:   p.PaymentTypeID,
		PayerEmail:    p.Payer.Email,
		DateApproved:  p.DateApproved,
	}
}
