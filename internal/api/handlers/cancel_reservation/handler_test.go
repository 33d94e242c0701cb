package cancel_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	reservationsService "github.com/m04kA/SMC-HotelService/internal/service/reservations"
	"github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
)

type fakeService struct {
	resp *models.ReservationResponse
	err  error
}

func (f *fakeService) Cancel(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doCancel(t *testing.T, h *Handler) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/reservas/5/cancelar", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Cancel(t *testing.T) {
	t.Run("успешная отмена - 200", func(t *testing.T) {
		svc := &fakeService{resp: &models.ReservationResponse{ID: 5, Status: models.WireStatusCancelled}}
		h := NewHandler(svc, nopLogger{})

		rec := doCancel(t, h)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("отмена невозможна - 400", func(t *testing.T) {
		svc := &fakeService{err: reservationsService.ErrCannotCancel}
		h := NewHandler(svc, nopLogger{})

		rec := doCancel(t, h)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"msg":"la reserva no puede ser cancelada"}`, rec.Body.String())
	})

	t.Run("бронь не найдена - 404", func(t *testing.T) {
		svc := &fakeService{err: reservationsService.ErrReservationNotFound}
		h := NewHandler(svc, nopLogger{})

		rec := doCancel(t, h)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
