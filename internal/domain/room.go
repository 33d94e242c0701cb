package domain

import "time"

// Room represents a hotel room
type Room struct {
	ID          int64
	Title       string
	Description string
	Capacity    int
	Price       float64
	PromoPrice  *float64
	Images      []string
	Amenities   []string
	Available   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FitsCapacity returns true if the room can host the requested number of guests
func (r *Room) FitsCapacity(guests int) bool {
	return r.Capacity >= guests
}

// RoomUpdate частичное обновление комнаты; nil-поля не меняются
type RoomUpdate struct {
	Title       *string
	Description *string
	Capacity    *int
	Price       *float64
	PromoPrice  *float64
	Images      []string
	Amenities   []string
	Available   *bool
}

// IsEmpty returns true if the update does not change anything
func (u *RoomUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Capacity == nil &&
		u.Price == nil && u.PromoPrice == nil && u.Images == nil &&
		u.Amenities == nil && u.Available == nil
}
