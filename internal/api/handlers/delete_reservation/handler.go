package delete_reservation

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
	msgNotCancelled         = "solo se pueden eliminar reservas canceladas"
	msgReservationDeleted   = "Reserva eliminada exitosamente"
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

// Handle DELETE /reservas/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reservas/{id} - Invalid reservation id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservas/{id} - Reservation not found: reservation_id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrNotCancelled):
			h.logger.Warn("DELETE /reservas/{id} - Reservation not cancelled: reservation_id=%d", id)
			handlers.RespondBadRequest(w, msgNotCancelled)

		default:
			h.logger.Error("DELETE /reservas/{id} - Failed to delete reservation: reservation_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservas/{id} - Reservation deleted successfully: reservation_id=%d", id)
	handlers.RespondMessage(w, msgReservationDeleted)
}
