package delete_room

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	roomsService "github.com/m04kA/SMC-HotelService/internal/service/rooms"
)

type fakeService struct {
	id  int64
	err error
}

func (f *fakeService) Delete(ctx context.Context, id int64) error {
	f.id = id
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doDelete(t *testing.T, h *Handler, id string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/habitaciones/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Delete(t *testing.T) {
	t.Run("успешное удаление - 200 с сообщением", func(t *testing.T) {
		svc := &fakeService{}
		h := NewHandler(svc, nopLogger{})

		rec := doDelete(t, h, "3")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"msg":"Habitación eliminada exitosamente"}`, rec.Body.String())
		assert.Equal(t, int64(3), svc.id)
	})

	t.Run("активные брони - 400", func(t *testing.T) {
		svc := &fakeService{err: roomsService.ErrRoomOccupied}
		h := NewHandler(svc, nopLogger{})

		rec := doDelete(t, h, "3")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"msg":"la habitación tiene reservas activas"}`, rec.Body.String())
	})

	t.Run("комната не найдена - 404", func(t *testing.T) {
		svc := &fakeService{err: roomsService.ErrRoomNotFound}
		h := NewHandler(svc, nopLogger{})

		rec := doDelete(t, h, "3")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("внутренняя ошибка - 500", func(t *testing.T) {
		svc := &fakeService{err: errors.New("db down")}
		h := NewHandler(svc, nopLogger{})

		rec := doDelete(t, h, "3")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
