package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

var (
	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")
)

// Request модели

// CreateGuestRequest запрос на регистрацию постояльца
type CreateGuestRequest struct {
	Name        string `json:"nombre"`
	Document    string `json:"dni"`
	Age         int    `json:"edad"`
	Nationality string `json:"nacionalidad"`
	Phone       string `json:"telefono"`
	CheckIn     string `json:"checkin"`  // "2026-03-15"
	CheckOut    string `json:"checkout"` // "2026-03-18"
	RoomLabel   string `json:"habitacion"`
	Signature   string `json:"firma"` // base64
}

// Validate проверяет обязательные поля запроса
func (r *CreateGuestRequest) Validate() bool {
	return r.Name != "" && r.Document != "" &&
		r.Age >= domain.MinGuestAge && r.Age <= domain.MaxGuestAge &&
		r.Nationality != "" && r.Phone != "" &&
		r.CheckIn != "" && r.CheckOut != "" &&
		r.RoomLabel != "" && r.Signature != ""
}

// ToDomain конвертирует request в domain модель
func (r *CreateGuestRequest) ToDomain() (*domain.Guest, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, ErrInvalidDate
	}
	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return &domain.Guest{
		Name:        r.Name,
		Document:    r.Document,
		Age:         r.Age,
		Nationality: r.Nationality,
		Phone:       r.Phone,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		RoomLabel:   r.RoomLabel,
		Signature:   r.Signature,
	}, nil
}

// UpdateGuestRequest запрос на частичное обновление карточки постояльца
type UpdateGuestRequest struct {
	Name        *string `json:"nombre,omitempty"`
	Document    *string `json:"dni,omitempty"`
	Age         *int    `json:"edad,omitempty"`
	Nationality *string `json:"nacionalidad,omitempty"`
	Phone       *string `json:"telefono,omitempty"`
	CheckIn     *string `json:"checkin,omitempty"`
	CheckOut    *string `json:"checkout,omitempty"`
	RoomLabel   *string `json:"habitacion,omitempty"`
	Signature   *string `json:"firma,omitempty"`
}

// ToDomain конвертирует request в domain модель обновления
func (r *UpdateGuestRequest) ToDomain() (domain.GuestUpdate, error) {
	upd := domain.GuestUpdate{
		Name:        r.Name,
		Document:    r.Document,
		Age:         r.Age,
		Nationality: r.Nationality,
		Phone:       r.Phone,
		RoomLabel:   r.RoomLabel,
		Signature:   r.Signature,
	}

	if r.CheckIn != nil {
		checkIn, err := time.Parse(domain.DateFormat, *r.CheckIn)
		if err != nil {
			return upd, ErrInvalidDate
		}
		upd.CheckIn = &checkIn
	}
	if r.CheckOut != nil {
		checkOut, err := time.Parse(domain.DateFormat, *r.CheckOut)
		if err != nil {
			return upd, ErrInvalidDate
		}
		upd.CheckOut = &checkOut
	}

	return upd, nil
}

// IsEmpty проверяет, что в запросе нет ни одного поля
func (r *UpdateGuestRequest) IsEmpty() bool {
	return r.Name == nil && r.Document == nil && r.Age == nil &&
		r.Nationality == nil && r.Phone == nil &&
		r.CheckIn == nil && r.CheckOut == nil &&
		r.RoomLabel == nil && r.Signature == nil
}

// Response модели

// GuestResponse ответ с данными постояльца
type GuestResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nombre"`
	Document    string    `json:"dni"`
	Age         int       `json:"edad"`
	Nationality string    `json:"nacionalidad"`
	Phone       string    `json:"telefono"`
	CheckIn     string    `json:"checkin"`
	CheckOut    string    `json:"checkout"`
	RoomLabel   string    `json:"habitacion"`
	Signature   string    `json:"firma"`
	CreatedAt   time.Time `json:"fechaCreacion"`
	UpdatedAt   time.Time `json:"fechaActualizacion"`
}

// GuestListResponse ответ со списком постояльцев
type GuestListResponse struct {
	Guests []GuestResponse `json:"pasajeros"`
}

// FromDomainGuest конвертирует domain модель в DTO
func FromDomainGuest(g *domain.Guest) *GuestResponse {
	if g == nil {
		return nil
	}

	return &GuestResponse{
		ID:          g.ID,
		Name:        g.Name,
		Document:    g.Document,
		Age:         g.Age,
		Nationality: g.Nationality,
		Phone:       g.Phone,
		CheckIn:     g.CheckIn.Format(domain.DateFormat),
		CheckOut:    g.CheckOut.Format(domain.DateFormat),
		RoomLabel:   g.RoomLabel,
		Signature:   g.Signature,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// FromDomainGuestList конвертирует список domain моделей в DTO
func FromDomainGuestList(guests []*domain.Guest) *GuestListResponse {
	resp := &GuestListResponse{
		Guests: make([]GuestResponse, 0, len(guests)),
	}
	for _, g := range guests {
		if guestResp := FromDomainGuest(g); guestResp != nil {
			resp.Guests = append(resp.Guests, *guestResp)
		}
	}
	return resp
}
