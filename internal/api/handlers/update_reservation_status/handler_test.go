package update_reservation_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
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

func (f *fakeService) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doPut(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/reservas/5/estado", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_StatusMapping(t *testing.T) {
	t.Run("недопустимый переход - 400", func(t *testing.T) {
		svc := &fakeService{err: reservationsService.ErrInvalidTransition}
		h := NewHandler(svc, nopLogger{})

		rec := doPut(t, h, `{"estado":"pendiente"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"msg":"transición de estado no permitida"}`, rec.Body.String())
	})

	t.Run("неизвестный статус - 400", func(t *testing.T) {
		svc := &fakeService{err: reservationsService.ErrInvalidStatus}
		h := NewHandler(svc, nopLogger{})

		rec := doPut(t, h, `{"estado":"volando"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("бронь не найдена - 404", func(t *testing.T) {
		svc := &fakeService{err: reservationsService.ErrReservationNotFound}
		h := NewHandler(svc, nopLogger{})

		rec := doPut(t, h, `{"estado":"confirmada"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
