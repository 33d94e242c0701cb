package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	createReservation "github.com/m04kA/SMC-HotelService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
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
