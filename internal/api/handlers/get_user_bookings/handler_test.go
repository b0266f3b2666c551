package get_user_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ShareIt-RentalService/internal/api/middleware"
	"github.com/m04kA/ShareIt-RentalService/internal/service/bookings"
	"github.com/m04kA/ShareIt-RentalService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	called bool
	req    *models.ListBookingsRequest
	resp   []models.BookingResponse
	err    error
}

func (s *fakeService) GetForBooker(_ context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error) {
	s.called = true
	s.req = req
	return s.resp, s.err
}

func doRequest(t *testing.T, svc *fakeService, target string, withUser bool) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(svc, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if withUser {
		req.Header.Set(middleware.UserIDHeader, "2")
	}
	rec := httptest.NewRecorder()

	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	t.Run("unknown state rejected before service call", func(t *testing.T) {
		svc := &fakeService{}
		rec := doRequest(t, svc, "/api/v1/bookings?state=UNSUPPORTED_STATUS", true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unknown state: UNSUPPORTED_STATUS")
		assert.False(t, svc.called)
	})

	t.Run("lowercase state rejected", func(t *testing.T) {
		svc := &fakeService{}
		rec := doRequest(t, svc, "/api/v1/bookings?state=all", true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, svc.called)
	})

	t.Run("missing state defaults to ALL", func(t *testing.T) {
		svc := &fakeService{resp: []models.BookingResponse{}}
		rec := doRequest(t, svc, "/api/v1/bookings", true)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.True(t, svc.called)
		assert.Equal(t, "ALL", string(svc.req.State))
		assert.Equal(t, 0, svc.req.Page)
		assert.Equal(t, 10, svc.req.Size)
	})

	t.Run("from and size translated to page index", func(t *testing.T) {
		svc := &fakeService{resp: []models.BookingResponse{}}
		rec := doRequest(t, svc, "/api/v1/bookings?from=25&size=10", true)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.True(t, svc.called)
		assert.Equal(t, 2, svc.req.Page)
		assert.Equal(t, 10, svc.req.Size)
	})

	t.Run("negative from rejected", func(t *testing.T) {
		svc := &fakeService{}
		rec := doRequest(t, svc, "/api/v1/bookings?from=-1", true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, svc.called)
	})

	t.Run("zero size rejected", func(t *testing.T) {
		svc := &fakeService{}
		rec := doRequest(t, svc, "/api/v1/bookings?size=0", true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, svc.called)
	})

	t.Run("missing user header", func(t *testing.T) {
		svc := &fakeService{}
		rec := doRequest(t, svc, "/api/v1/bookings", false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, svc.called)
	})

	t.Run("unknown user mapped to 404", func(t *testing.T) {
		svc := &fakeService{err: bookings.ErrUserNotFound}
		rec := doRequest(t, svc, "/api/v1/bookings", true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
