package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

type fakeRoomRepo struct {
	rooms []*domain.Room
	err   error
}

func (f *fakeRoomRepo) ListAvailable(ctx context.Context) ([]*domain.Room, error) {
	return f.rooms, f.err
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationRepo) GetOverlapping(ctx context.Context, checkIn, checkOut time.Time) ([]*domain.Reservation, error) {
	return f.reservations, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func date(value string) time.Time {
	t, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestExecute_FiltersOccupiedAndSmallRooms(t *testing.T) {
	rooms := []*domain.Room{
		{ID: 1, Title: "Suite", Capacity: 4},
		{ID: 2, Title: "Doble", Capacity: 2},
		{ID: 3, Title: "Individual", Capacity: 1},
	}
	reservations := []*domain.Reservation{
		{ID: 10, RoomID: 2, Status: domain.StatusConfirmed},
	}

	uc := NewUseCase(&fakeRoomRepo{rooms: rooms}, &fakeReservationRepo{reservations: reservations}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CheckIn:   date("2026-03-10"),
		CheckOut:  date("2026-03-12"),
		NumPeople: 2,
	})
	require.NoError(t, err)

	// Номер 2 занят, номер 3 мал для двоих
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, int64(1), resp.Rooms[0].ID)
}

func TestExecute_NoCapacityFilterWithoutPeople(t *testing.T) {
	rooms := []*domain.Room{
		{ID: 1, Capacity: 1},
		{ID: 2, Capacity: 2},
	}

	uc := NewUseCase(&fakeRoomRepo{rooms: rooms}, &fakeReservationRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CheckIn:  date("2026-03-10"),
		CheckOut: date("2026-03-12"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Rooms, 2)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeRoomRepo{}, &fakeReservationRepo{}, nopLogger{})

	t.Run("checkIn после checkOut", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			CheckIn:  date("2026-03-12"),
			CheckOut: date("2026-03-10"),
		})
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("checkIn равен checkOut", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			CheckIn:  date("2026-03-10"),
			CheckOut: date("2026-03-10"),
		})
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("пустые даты", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("отрицательное число гостей", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			CheckIn:   date("2026-03-10"),
			CheckOut:  date("2026-03-12"),
			NumPeople: -1,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecute_RepositoryErrors(t *testing.T) {
	req := &Request{
		CheckIn:  date("2026-03-10"),
		CheckOut: date("2026-03-12"),
	}

	t.Run("ошибка репозитория номеров", func(t *testing.T) {
		uc := NewUseCase(&fakeRoomRepo{err: errors.New("connection refused")}, &fakeReservationRepo{}, nopLogger{})
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("ошибка репозитория броней", func(t *testing.T) {
		uc := NewUseCase(&fakeRoomRepo{}, &fakeReservationRepo{err: errors.New("connection refused")}, nopLogger{})
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
