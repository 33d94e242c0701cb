package delete_guest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	guestsService "github.com/m04kA/SMC-HotelService/internal/service/guests"
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
	req := httptest.NewRequest(http.MethodDelete, "/pasajeros/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Delete(t *testing.T) {
	t.Run("успешное удаление - 200 с сообщением", func(t *testing.T) {
		svc := &fakeService{}
		h := NewHandler(svc, nopLogger{})

		rec := doDelete(t, h, "11")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"msg":"Pasajero eliminado exitosamente"}`, rec.Body.String())
		assert.Equal(t, int64(11), svc.id)
	})

	t.Run("пассажир не найден - 404", func(t *testing.T) {
		svc := &fakeService{err: guestsService.ErrGuestNotFound}
		h := NewHandler(svc, nopLogger{})

		rec := doDelete(t, h, "11")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
