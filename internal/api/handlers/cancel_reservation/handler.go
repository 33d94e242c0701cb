package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	reservationsService "github.com/m04kA/SMC-HotelService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "id de reserva inválido"
	msgReservationNotFound  = "reserva no encontrada"
	msgCannotCancel         = "la reserva no puede ser cancelada"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /reservas/{id}/cancelar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservas/{id}/cancelar - Invalid reservation id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("PUT /reservas/{id}/cancelar - Reservation not found: reservation_id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrCannotCancel):
			h.logger.Warn("PUT /reservas/{id}/cancelar - Cannot cancel: reservation_id=%d", id)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PUT /reservas/{id}/cancelar - Failed to cancel reservation: reservation_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservas/{id}/cancelar - Reservation cancelled successfully: reservation_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
