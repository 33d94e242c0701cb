package reservations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
)

type fakeReservationRepo struct {
	reservation *domain.Reservation
	getErr      error

	updatedStatus *domain.ReservationStatus
	deleted       bool
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.reservation, nil
}

func (f *fakeReservationRepo) List(ctx context.Context) ([]*domain.Reservation, error) {
	if f.reservation == nil {
		return nil, nil
	}
	return []*domain.Reservation{f.reservation}, nil
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	f.updatedStatus = &status
	return nil
}

func (f *fakeReservationRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = true
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func pendingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:     1,
		Code:   "RES-202603-A1B2C3",
		RoomID: 5,
		Status: domain.StatusPending,
	}
}

func TestUpdateStatus(t *testing.T) {
	t.Run("pending -> confirmada", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: pendingReservation()}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: models.WireStatusConfirmed})
		require.NoError(t, err)

		assert.Equal(t, models.WireStatusConfirmed, resp.Status)
		require.NotNil(t, repo.updatedStatus)
		assert.Equal(t, domain.StatusConfirmed, *repo.updatedStatus)
	})

	t.Run("неизвестный статус", func(t *testing.T) {
		svc := NewService(&fakeReservationRepo{reservation: pendingReservation()}, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "pagada"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("недопустимый переход pending -> completada", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: pendingReservation()}
		svc := NewService(repo, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: models.WireStatusCompleted})
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Nil(t, repo.updatedStatus)
	})

	t.Run("cancelled терминальный", func(t *testing.T) {
		res := pendingReservation()
		res.Status = domain.StatusCancelled
		svc := NewService(&fakeReservationRepo{reservation: res}, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: models.WireStatusConfirmed})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("бронь не найдена", func(t *testing.T) {
		svc := NewService(&fakeReservationRepo{getErr: reservationRepo.ErrReservationNotFound}, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: models.WireStatusConfirmed})
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestCancel(t *testing.T) {
	t.Run("активная бронь отменяется", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: pendingReservation()}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Cancel(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, models.WireStatusCancelled, resp.Status)
		require.NotNil(t, repo.updatedStatus)
		assert.Equal(t, domain.StatusCancelled, *repo.updatedStatus)
	})

	t.Run("завершённую бронь отменить нельзя", func(t *testing.T) {
		res := pendingReservation()
		res.Status = domain.StatusCompleted
		svc := NewService(&fakeReservationRepo{reservation: res}, nopLogger{})

		_, err := svc.Cancel(context.Background(), 1)
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestDelete(t *testing.T) {
	t.Run("отменённая бронь удаляется", func(t *testing.T) {
		res := pendingReservation()
		res.Status = domain.StatusCancelled
		repo := &fakeReservationRepo{reservation: res}
		svc := NewService(repo, nopLogger{})

		err := svc.Delete(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, repo.deleted)
	})

	t.Run("активную бронь удалить нельзя", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: pendingReservation()}
		svc := NewService(repo, nopLogger{})

		err := svc.Delete(context.Background(), 1)
		assert.ErrorIs(t, err, ErrNotCancelled)
		assert.False(t, repo.deleted)
	})
}

func TestGetByID_MapsWireStatus(t *testing.T) {
	res := pendingReservation()
	res.Status = domain.StatusConfirmed
	svc := NewService(&fakeReservationRepo{reservation: res}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.WireStatusConfirmed, resp.Status)
	assert.Equal(t, "RES-202603-A1B2C3", resp.Code)
}
