package update_room

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	roomsService "github.com/m04kA/SMC-HotelService/internal/service/rooms"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgInvalidRoomID      = "id de habitación inválido"
	msgInvalidRoomData    = "datos de la habitación inválidos"
	msgRoomNotFound       = "habitación no encontrada"
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

// Handle PUT /habitaciones/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /habitaciones/{id} - Invalid room id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req models.UpdateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /habitaciones/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, roomsService.ErrRoomNotFound):
			h.logger.Warn("PUT /habitaciones/{id} - Room not found: room_id=%d", id)
			handlers.RespondNotFound(w, msgRoomNotFound)
		case errors.Is(err, roomsService.ErrInvalidInput):
			h.logger.Warn("PUT /habitaciones/{id} - Invalid room data: room_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidRoomData)
		default:
			h.logger.Error("PUT /habitaciones/{id} - Failed to update room: room_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /habitaciones/{id} - Room updated successfully: room_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
