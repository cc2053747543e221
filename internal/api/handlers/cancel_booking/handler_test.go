package cancel_booking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Cancel(ctx context.Context, identity domain.Identity, bookingID int64) error {
	return m.Called(ctx, identity, bookingID).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	client := domain.Identity{UserID: 5, Role: domain.RoleClient}

	tests := []struct {
		name   string
		svcErr error
		status int
	}{
		{"cancelled", nil, http.StatusOK},
		{"not found or denied", bookings.ErrNotFoundOrDenied, http.StatusNotFound},
		{"already cancelled", bookings.ErrAlreadyCancelled, http.StatusConflict},
		{"already completed", bookings.ErrAlreadyCompleted, http.StatusConflict},
		{"concurrent", bookings.ErrConcurrentUpdate, http.StatusConflict},
		{"too late", bookings.ErrTooLateToCancel, http.StatusBadRequest},
		{"storage", fmt.Errorf("%w: deadline", bookings.ErrStorage), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Cancel", mock.Anything, client, int64(4)).Return(tt.svcErr)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/4/cancel", nil)
			req = mux.SetURLVars(req, map[string]string{"bookingId": "4"})
			req = req.WithContext(middleware.WithIdentity(req.Context(), client))
			rec := httptest.NewRecorder()

			NewHandler(svc, nopLogger{}).Handle(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.svcErr == nil {
				assert.JSONEq(t, `{"success":true,"data":{"id":4,"status":"cancelled"}}`, rec.Body.String())
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandle_BadRequest(t *testing.T) {
	svc := &mockService{}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/zero/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": "zero"})
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
}
