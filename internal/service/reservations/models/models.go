package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Статусы брони во внешнем контракте
const (
	WireStatusPending   = "pendiente"
	WireStatusConfirmed = "confirmada"
	WireStatusCompleted = "completada"
	WireStatusCancelled = "cancelada"
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса брони
type UpdateStatusRequest struct {
	Status string `json:"estado"`
}

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID            int64     `json:"id"`
	Code          string    `json:"codigoReserva"`
	CustomerName  string    `json:"nombreCliente"`
	CustomerEmail string    `json:"emailCliente"`
	CustomerPhone string    `json:"telefonoCliente"`
	RoomID        int64     `json:"habitacionId"`
	Adults        int       `json:"numAdultos"`
	Children      int       `json:"numNinos"`
	CheckIn       string    `json:"fechaCheckIn"`  // "2026-03-15"
	CheckOut      string    `json:"fechaCheckOut"` // "2026-03-18"
	Status        string    `json:"estado"`
	TotalPrice    float64   `json:"precioTotal"`
	PaymentID     *int64    `json:"pagoId,omitempty"`
	CreatedAt     time.Time `json:"fechaCreacion"`
	UpdatedAt     time.Time `json:"fechaActualizacion"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservas"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	if res == nil {
		return nil
	}

	return &ReservationResponse{
		ID:            res.ID,
		Code:          res.Code,
		CustomerName:  res.CustomerName,
		CustomerEmail: res.CustomerEmail,
		CustomerPhone: res.CustomerPhone,
		RoomID:        res.RoomID,
		Adults:        res.Adults,
		Children:      res.Children,
		CheckIn:       res.CheckIn.Format(domain.DateFormat),
		CheckOut:      res.CheckOut.Format(domain.DateFormat),
		Status:        FromDomainReservationStatus(res.Status),
		TotalPrice:    res.TotalPrice,
		PaymentID:     res.PaymentID,
		CreatedAt:     res.CreatedAt,
		UpdatedAt:     res.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}
	for _, res := range reservations {
		if resResp := FromDomainReservation(res); resResp != nil {
			resp.Reservations = append(resp.Reservations, *resResp)
		}
	}
	return resp
}

// ToDomainReservationStatus конвертирует статус внешнего контракта в domain.ReservationStatus
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	switch status {
	case WireStatusPending:
		return domain.StatusPending, nil
	case WireStatusConfirmed:
		return domain.StatusConfirmed, nil
	case WireStatusCompleted:
		return domain.StatusCompleted, nil
	case WireStatusCancelled:
		return domain.StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}

// FromDomainReservationStatus конвертирует domain статус в статус внешнего контракта
func FromDomainReservationStatus(status domain.ReservationStatus) string {
	switch status {
	case domain.StatusPending:
		return WireStatusPending
	case domain.StatusConfirmed:
		return WireStatusConfirmed
	case domain.StatusCompleted:
		return WireStatusCompleted
	case domain.StatusCancelled:
		return WireStatusCancelled
	default:
		return string(status)
	}
}
