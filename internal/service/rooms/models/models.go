package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модели

// CreateRoomRequest запрос на создание номера
type CreateRoomRequest struct {
	Title       string   `json:"titulo"`
	Description string   `json:"descripcion"`
	Capacity    int      `json:"capacidadPersonas"`
	Price       float64  `json:"precio"`
	PromoPrice  *float64 `json:"precioPromocion,omitempty"`
	Images      []string `json:"imagenes,omitempty"`
	Amenities   []string `json:"amenidades,omitempty"`
	Available   *bool    `json:"disponible,omitempty"`
}

// Validate проверяет обязательные поля запроса
func (r *CreateRoomRequest) Validate() bool {
	return r.Title != "" && r.Description != "" && r.Capacity >= 1 && r.Price >= 0
}

// ToDomain конвертирует request в domain модель
func (r *CreateRoomRequest) ToDomain() *domain.Room {
	room := &domain.Room{
		Title:       r.Title,
		Description: r.Description,
		Capacity:    r.Capacity,
		Price:       r.Price,
		PromoPrice:  r.PromoPrice,
		Images:      r.Images,
		Amenities:   r.Amenities,
		Available:   true,
	}
	if r.Available != nil {
		room.Available = *r.Available
	}
	return room
}

// UpdateRoomRequest запрос на частичное обновление номера
type UpdateRoomRequest struct {
	Title       *string   `json:"titulo,omitempty"`
	Description *string   `json:"descripcion,omitempty"`
	Capacity    *int      `json:"capacidadPersonas,omitempty"`
	Price       *float64  `json:"precio,omitempty"`
	PromoPrice  *float64  `json:"precioPromocion,omitempty"`
	Images      []string  `json:"imagenes,omitempty"`
	Amenities   []string  `json:"amenidades,omitempty"`
	Available   *bool     `json:"disponible,omitempty"`
}

// ToDomain конвертирует request в domain модель обновления
func (r *UpdateRoomRequest) ToDomain() domain.RoomUpdate {
	return domain.RoomUpdate{
		Title:       r.Title,
		Description: r.Description,
		Capacity:    r.Capacity,
		Price:       r.Price,
		PromoPrice:  r.PromoPrice,
		Images:      r.Images,
		Amenities:   r.Amenities,
		Available:   r.Available,
	}
}

// Response модели

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"titulo"`
	Description string    `json:"descripcion"`
	Capacity    int       `json:"capacidadPersonas"`
	Price       float64   `json:"precio"`
	PromoPrice  *float64  `json:"precioPromocion,omitempty"`
	Images      []string  `json:"imagenes"`
	Amenities   []string  `json:"amenidades"`
	Available   bool      `json:"disponible"`
	CreatedAt   time.Time `json:"fechaCreacion"`
	UpdatedAt   time.Time `json:"fechaActualizacion"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"habitaciones"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(room *domain.Room) *RoomResponse {
	if room == nil {
		return nil
	}

	resp := &RoomResponse{
		ID:          room.ID,
		Title:       room.Title,
		Description: room.Description,
		Capacity:    room.Capacity,
		Price:       room.Price,
		PromoPrice:  room.PromoPrice,
		Images:      room.Images,
		Amenities:   room.Amenities,
		Available:   room.Available,
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	if resp.Amenities == nil {
		resp.Amenities = []string{}
	}
	return resp
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}
	for _, room := range rooms {
		if roomResp := FromDomainRoom(room); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}
	return resp
}
