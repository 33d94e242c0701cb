package create_payment_preference

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	createPaymentPreference "github.com/m04kA/SMC-HotelService/internal/usecase/create_payment_preference"
)

// CreatePreferenceRequest HTTP request model
type CreatePreferenceRequest struct {
	CustomerName  string  `json:"nombreCliente"`
	CustomerEmail string  `json:"emailCliente"`
	CustomerPhone string  `json:"telefonoCliente"`
	RoomID        int64   `json:"habitacionId"`
	Adults        int     `json:"numAdultos"`
	Children      int     `json:"numNinos"`
	CheckIn       string  `json:"fechaCheckIn"`  // "2026-03-15"
	CheckOut      string  `json:"fechaCheckOut"` // "2026-03-18"
	TotalPrice    float64 `json:"precioTotal"`
}

// CreatePreferenceResponse HTTP response model
type CreatePreferenceResponse struct {
	PreferenceID string `json:"preferenciaId"`
	InitPoint    string `json:"initPoint"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreatePreferenceRequest) ToUseCaseRequest() (*createPaymentPreference.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createPaymentPreference.Request{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		RoomID:        r.RoomID,
		Adults:        r.Adults,
		Children:      r.Children,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		TotalPrice:    r.TotalPrice,
	}, nil
}
