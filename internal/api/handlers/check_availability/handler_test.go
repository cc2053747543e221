package check_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	checkAvailability "github.com/m04kA/SMC-HotelBooking/internal/usecase/check_availability"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*checkAvailability.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const body = `{"roomId":1,"checkIn":"2030-06-10","checkOut":"2030-06-15"}`

func serve(uc *mockUseCase, payload string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/check-availability", strings.NewReader(payload))
	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) AvailabilityResponse {
	t.Helper()
	var out struct {
		Data AvailabilityResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out.Data
}

func TestHandle_Available(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&checkAvailability.Response{
		Available:     true,
		TotalPrice:    decimal.NewFromInt(500),
		Nights:        5,
		PricePerNight: decimal.NewFromInt(100),
	}, nil)

	rec := serve(uc, body)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)
	assert.True(t, got.Available)
	require.NotNil(t, got.TotalPrice)
	assert.Equal(t, "500.00", *got.TotalPrice)
	assert.Empty(t, got.Message)
}

func TestHandle_Unavailable(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&checkAvailability.Response{
		Available:     false,
		Nights:        5,
		PricePerNight: decimal.NewFromInt(100),
	}, nil)

	rec := serve(uc, body)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)
	assert.False(t, got.Available)
	assert.Nil(t, got.TotalPrice)
	assert.Equal(t, msgUnavailable, got.Message)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		ucErr   error
		status  int
	}{
		{"bad body", `[]`, nil, http.StatusBadRequest},
		{"bad date", `{"roomId":1,"checkIn":"2030/06/10","checkOut":"2030-06-15"}`, nil, http.StatusBadRequest},
		{"range", body, checkAvailability.ErrInvalidDateRange, http.StatusBadRequest},
		{"not found", body, checkAvailability.ErrRoomNotFound, http.StatusNotFound},
		{"storage", body, checkAvailability.ErrStorage, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := serve(uc, tt.payload)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
