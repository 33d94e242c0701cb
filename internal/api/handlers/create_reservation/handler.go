package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	reservationModels "github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-HotelService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgInvalidDates       = "fechas inválidas, se espera formato YYYY-MM-DD"
	msgInvalidReservation = "datos de la reserva inválidos"
	msgRoomNotFound       = "habitación no encontrada"
	msgRoomUnavailable    = "la habitación no está disponible para esas fechas"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /reservas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservas - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservas - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createReservation.ErrRoomUnavailable):
			h.logger.Warn("POST /reservas - Room unavailable: room_id=%d, checkIn=%s, checkOut=%s",
				req.RoomID, req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgRoomUnavailable)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservas - Invalid reservation data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReservation)

		case errors.Is(err, createReservation.ErrCodeGenerationExhausted):
			h.logger.Error("POST /reservas - Code generation exhausted: room_id=%d", req.RoomID)
			handlers.RespondInternalError(w)

		default:
			h.logger.Error("POST /reservas - Failed to create reservation: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := reservationModels.FromDomainReservation(result.Reservation)

	h.logger.Info("POST /reservas - Reservation created successfully: reservation_id=%d, code=%s",
		result.Reservation.ID, result.Reservation.Code)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
