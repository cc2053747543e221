package get_room_calendar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	getRoomCalendar "github.com/m04kA/SMC-HotelBooking/internal/usecase/get_room_calendar"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getRoomCalendar.Request) (*getRoomCalendar.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*getRoomCalendar.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc *mockUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/rooms/{roomId}/calendar", NewHandler(uc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	d := domain.MustParseDate
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getRoomCalendar.Request{
		RoomID: 3,
		From:   d("2030-01-01"),
		To:     d("2030-01-10"),
	}).Return(&getRoomCalendar.Response{
		RoomID: 3,
		From:   d("2030-01-01"),
		To:     d("2030-01-10"),
		Free:   []getRoomCalendar.Range{{CheckIn: d("2030-01-01"), CheckOut: d("2030-01-04"), Nights: 3}},
		Booked: []getRoomCalendar.Range{{CheckIn: d("2030-01-04"), CheckOut: d("2030-01-10"), Nights: 6}},
	}, nil)

	rec := serve(uc, "/api/v1/rooms/3/calendar?from=2030-01-01&to=2030-01-10")
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Success bool             `json:"success"`
		Data    CalendarResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.Equal(t, int64(3), out.Data.RoomID)
	assert.Equal(t, "2030-01-01", out.Data.From)
	assert.Equal(t, []RangeResponse{{CheckIn: "2030-01-01", CheckOut: "2030-01-04", Nights: 3}}, out.Data.Free)
	assert.Equal(t, []RangeResponse{{CheckIn: "2030-01-04", CheckOut: "2030-01-10", Nights: 6}}, out.Data.Booked)
	uc.AssertExpectations(t)
}

func TestHandle_EmptyQueryUsesDefaults(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getRoomCalendar.Request{RoomID: 3}).Return(&getRoomCalendar.Response{
		RoomID: 3,
		From:   domain.MustParseDate("2030-01-01"),
		To:     domain.MustParseDate("2030-01-31"),
	}, nil)

	rec := serve(uc, "/api/v1/rooms/3/calendar")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"roomId":3,"from":"2030-01-01","to":"2030-01-31","free":[],"booked":[]}}`, rec.Body.String())
	uc.AssertExpectations(t)
}

func TestHandle_BadInput(t *testing.T) {
	uc := &mockUseCase{}

	rec := serve(uc, "/api/v1/rooms/abc/calendar")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(uc, "/api/v1/rooms/3/calendar?from=01-01-2030")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_Errors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"room not found", getRoomCalendar.ErrRoomNotFound, http.StatusNotFound},
		{"bad range", getRoomCalendar.ErrInvalidDateRange, http.StatusBadRequest},
		{"too long", getRoomCalendar.ErrRangeTooLong, http.StatusBadRequest},
		{"storage", getRoomCalendar.ErrStorage, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tc.err)

			rec := serve(uc, "/api/v1/rooms/3/calendar")
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
