package create_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	roomsService "github.com/m04kA/SMC-HotelService/internal/service/rooms"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgInvalidRoomData    = "datos de la habitación inválidos"
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

// Handle POST /habitaciones
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /habitaciones - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, roomsService.ErrInvalidInput):
			h.logger.Warn("POST /habitaciones - Invalid room data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRoomData)
		default:
			h.logger.Error("POST /habitaciones - Failed to create room: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /habitaciones - Room created successfully: room_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
