package delete_room

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	roomsService "github.com/m04kA/SMC-HotelService/internal/service/rooms"
)

const (
	msgInvalidRoomID = "id de habitación inválido"
	msgRoomNotFound  = "habitación no encontrada"
	msgRoomOccupied  = "la habitación tiene reservas activas"
	msgRoomDeleted   = "Habitación eliminada exitosamente"
)

type Handler struct {
	service RoomsService
	logger  Logger
}

func NewHandler(service RoomsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /habitaciones/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /habitaciones/{id} - Invalid room id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, roomsService.ErrRoomNotFound):
			h.logger.Warn("DELETE /habitaciones/{id} - Room not found: room_id=%d", id)
			handlers.RespondNotFound(w, msgRoomNotFound)
		case errors.Is(err, roomsService.ErrRoomOccupied):
			h.logger.Warn("DELETE /habitaciones/{id} - Room has active reservations: room_id=%d", id)
			handlers.RespondBadRequest(w, msgRoomOccupied)
		default:
			h.logger.Error("DELETE /habitaciones/{id} - Failed to delete room: room_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /habitaciones/{id} - Room deleted successfully: room_id=%d", id)
	handlers.RespondMessage(w, msgRoomDeleted)
}
