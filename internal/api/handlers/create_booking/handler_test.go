package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-HotelBooking/internal/usecase/create_booking"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*createBooking.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(body string, identity *domain.Identity) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if identity != nil {
		req = req.WithContext(middleware.WithIdentity(req.Context(), *identity))
	}
	return req
}

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	created := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	uc.On("Execute", mock.Anything, &createBooking.Request{
		UserID:   5,
		RoomID:   1,
		CheckIn:  domain.MustParseDate("2030-06-10"),
		CheckOut: domain.MustParseDate("2030-06-15"),
	}).Return(&createBooking.Response{
		ID:            11,
		UserID:        5,
		RoomID:        1,
		RoomName:      "Deluxe",
		CheckIn:       domain.MustParseDate("2030-06-10"),
		CheckOut:      domain.MustParseDate("2030-06-15"),
		Nights:        5,
		PricePerNight: decimal.NewFromInt(100),
		TotalPrice:    decimal.NewFromInt(500),
		Status:        string(domain.StatusPending),
		CreatedAt:     created,
		UpdatedAt:     created,
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, newRequest(
		`{"roomId":1,"checkIn":"2030-06-10","checkOut":"2030-06-15"}`,
		&domain.Identity{UserID: 5, Role: domain.RoleClient},
	))

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Success bool            `json:"success"`
		Data    BookingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(11), body.Data.ID)
	assert.Equal(t, "500.00", body.Data.TotalPrice)
	assert.Equal(t, "100.00", body.Data.PricePerNight)
	assert.Equal(t, 5, body.Data.Nights)
	assert.Equal(t, "pending", body.Data.Status)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	client := &domain.Identity{UserID: 5, Role: domain.RoleClient}
	validBody := `{"roomId":1,"checkIn":"2030-06-10","checkOut":"2030-06-15"}`

	tests := []struct {
		name     string
		body     string
		identity *domain.Identity
		ucErr    error
		status   int
	}{
		{"anonymous", validBody, nil, nil, http.StatusUnauthorized},
		{"malformed body", `{"roomId":`, client, nil, http.StatusBadRequest},
		{"missing room", `{"checkIn":"2030-06-10","checkOut":"2030-06-15"}`, client, nil, http.StatusBadRequest},
		{"bad date", `{"roomId":1,"checkIn":"10.06.2030","checkOut":"2030-06-15"}`, client, nil, http.StatusBadRequest},
		{"unavailable", validBody, client, createBooking.ErrRoomUnavailable, http.StatusConflict},
		{"room not found", validBody, client, createBooking.ErrRoomNotFound, http.StatusNotFound},
		{"date range", validBody, client, createBooking.ErrInvalidDateRange, http.StatusBadRequest},
		{"past", validBody, client, createBooking.ErrPastCheckIn, http.StatusBadRequest},
		{"storage", validBody, client, fmt.Errorf("%w: timeout", createBooking.ErrStorage), http.StatusServiceUnavailable},
		{"unexpected", validBody, client, fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := httptest.NewRecorder()
			NewHandler(uc, nopLogger{}).Handle(rec, newRequest(tt.body, tt.identity))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"success":false`)
			if tt.ucErr == nil {
				uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			}
		})
	}
}
