package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminBookingStatsHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/admin_booking_stats"
	adminDeleteBookingHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/admin_delete_booking"
	adminListBookingsHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/admin_list_bookings"
	adminUpdateStatusHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/admin_update_status"
	cancelBookingHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_booking"
	getRoomCalendarHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_room_calendar"
	getUserBookingsHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_user_bookings"
	healthHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/health"
	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/internal/infra/events"
	"github.com/m04kA/SMC-HotelBooking/internal/infra/lock"
	"github.com/m04kA/SMC-HotelBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-HotelBooking/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-HotelBooking/internal/service/bookings"
	checkAvailabilityUC "github.com/m04kA/SMC-HotelBooking/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-HotelBooking/internal/usecase/create_booking"
	getRoomCalendarUC "github.com/m04kA/SMC-HotelBooking/internal/usecase/get_room_calendar"
	"github.com/m04kA/SMC-HotelBooking/pkg/metrics"
	"github.com/m04kA/SMC-HotelBooking/pkg/txmanager"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type testServer struct {
	router http.Handler
	auth   *middleware.Authenticator
	store  *memory.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store := memory.NewStore()
	store.AddRoom(domain.Room{ID: 1, Name: "Deluxe", PricePerNight: decimal.NewFromInt(100), Capacity: 2, IsAvailable: true})
	store.AddUser(domain.UserSummary{ID: 10, Name: "Alice", Email: "alice@example.com", Role: domain.RoleClient})
	store.AddUser(domain.UserSummary{ID: 20, Name: "Bob", Email: "bob@example.com", Role: domain.RoleClient})
	store.AddUser(domain.UserSummary{ID: 1, Name: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin})

	log := nopLogger{}
	var m *metrics.Metrics
	checker := availability.NewChecker(store, log)
	locker := lock.NewLocal()

	createUC := createBookingUC.NewUseCase(store, store, checker, locker, txmanager.Noop{}, events.Noop{}, m, log)
	checkUC := checkAvailabilityUC.NewUseCase(store, checker, log)
	calendarUC := getRoomCalendarUC.NewUseCase(store, store, log)
	svc := bookingsService.NewService(store, checker, locker, txmanager.Noop{}, events.Noop{}, m, true, log)

	auth := middleware.NewAuthenticator("router-secret", log)
	getUserBookings := getUserBookingsHandler.NewHandler(svc, log)

	router := NewRouter(Handlers{
		Health:             healthHandler.NewHandler(nil, log).Handle,
		CheckAvailability:  checkAvailabilityHandler.NewHandler(checkUC, log).Handle,
		GetRoomCalendar:    getRoomCalendarHandler.NewHandler(calendarUC, log).Handle,
		CreateBooking:      createBookingHandler.NewHandler(createUC, log).Handle,
		GetUserBookings:    getUserBookings.Handle,
		GetBooking:         getBookingHandler.NewHandler(svc, log).Handle,
		CancelBooking:      cancelBookingHandler.NewHandler(svc, log).Handle,
		AdminListBookings:  adminListBookingsHandler.NewHandler(svc, log).Handle,
		AdminBookingStats:  adminBookingStatsHandler.NewHandler(svc, log).Handle,
		AdminUpdateStatus:  adminUpdateStatusHandler.NewHandler(svc, log).Handle,
		AdminDeleteBooking: adminDeleteBookingHandler.NewHandler(svc, log).Handle,
	}, Options{
		Auth:           auth,
		Logger:         log,
		RequestTimeout: 5 * time.Second,
	})

	return &testServer{router: router, auth: auth, store: store}
}

func (s *testServer) token(t *testing.T, userID int64, role domain.Role) string {
	t.Helper()
	token, err := s.auth.Issue(domain.Identity{UserID: userID, Role: role}, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, path, token, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Body.Len() == 0 {
		return rec.Code, nil
	}
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func data(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %v", body)
	return d
}

func TestRouter_BookingLifecycle(t *testing.T) {
	s := newTestServer(t)
	alice := s.token(t, 10, domain.RoleClient)
	bob := s.token(t, 20, domain.RoleClient)
	admin := s.token(t, 1, domain.RoleAdmin)

	// Котировка без токена
	status, body := s.do(t, http.MethodPost, "/api/v1/bookings/check-availability", "",
		`{"roomId":1,"checkIn":"2099-06-10","checkOut":"2099-06-15"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, data(t, body)["available"])
	assert.Equal(t, "500.00", data(t, body)["totalPrice"])

	status, body = s.do(t, http.MethodPost, "/api/v1/bookings", "",
		`{"roomId":1,"checkIn":"2099-06-10","checkOut":"2099-06-15"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "отсутствует bearer токен", body["message"])

	status, body = s.do(t, http.MethodPost, "/api/v1/bookings", alice,
		`{"roomId":1,"checkIn":"2099-06-10","checkOut":"2099-06-15"}`)
	require.Equal(t, http.StatusCreated, status)
	created := data(t, body)
	assert.Equal(t, "500.00", created["totalPrice"])
	assert.Equal(t, "pending", created["status"])
	id := int64(created["id"].(float64))
	path := "/api/v1/bookings/" + strconv.FormatInt(id, 10)
	adminPath := "/api/v1/admin/bookings/" + strconv.FormatInt(id, 10)

	// Пересечение на последнюю ночь
	status, _ = s.do(t, http.MethodPost, "/api/v1/bookings", bob,
		`{"roomId":1,"checkIn":"2099-06-14","checkOut":"2099-06-16"}`)
	assert.Equal(t, http.StatusConflict, status)

	// День выезда свободен
	status, _ = s.do(t, http.MethodPost, "/api/v1/bookings", bob,
		`{"roomId":1,"checkIn":"2099-06-15","checkOut":"2099-06-18"}`)
	assert.Equal(t, http.StatusCreated, status)

	status, body = s.do(t, http.MethodPost, "/api/v1/bookings/check-availability", "",
		`{"roomId":1,"checkIn":"2099-06-12","checkOut":"2099-06-13"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, data(t, body)["available"])

	status, _ = s.do(t, http.MethodGet, path, alice, "")
	assert.Equal(t, http.StatusOK, status)
	status, _ = s.do(t, http.MethodGet, path, bob, "")
	assert.Equal(t, http.StatusForbidden, status)

	status, body = s.do(t, http.MethodGet, "/api/v1/bookings", alice, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1.0, data(t, body)["total"])

	status, _ = s.do(t, http.MethodGet, "/api/v1/admin/bookings", alice, "")
	assert.Equal(t, http.StatusForbidden, status)

	status, body = s.do(t, http.MethodGet, "/api/v1/admin/bookings", admin, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2.0, data(t, body)["total"])

	status, body = s.do(t, http.MethodGet, "/api/v1/admin/users/10/bookings", admin, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1.0, data(t, body)["total"])

	status, body = s.do(t, http.MethodPatch, adminPath+"/status", admin, `{"status":"confirmed","paymentId":"pay_1"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "confirmed", data(t, body)["status"])
	assert.Equal(t, "pay_1", data(t, body)["paymentId"])

	status, body = s.do(t, http.MethodPatch, adminPath+"/status", admin, `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "бронирование уже в этом статусе", body["message"])

	status, body = s.do(t, http.MethodPatch, adminPath+"/status", admin, `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["message"], "некорректный статус бронирования")

	status, body = s.do(t, http.MethodGet, "/api/v1/admin/bookings/stats", admin, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "500.00", data(t, body)["revenue"])

	// Чужую бронь отменить нельзя, свою можно один раз
	status, _ = s.do(t, http.MethodPost, path+"/cancel", bob, "")
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = s.do(t, http.MethodPost, path+"/cancel", alice, "")
	assert.Equal(t, http.StatusOK, status)
	status, _ = s.do(t, http.MethodPost, path+"/cancel", alice, "")
	assert.Equal(t, http.StatusConflict, status)

	status, _ = s.do(t, http.MethodDelete, adminPath, admin, "")
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = s.do(t, http.MethodGet, path, admin, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", data(t, body)["status"])
}

func TestRouter_RoomCalendar(t *testing.T) {
	s := newTestServer(t)
	s.store.AddBooking(domain.Booking{
		UserID:   10,
		RoomID:   1,
		CheckIn:  domain.MustParseDate("2099-06-10"),
		CheckOut: domain.MustParseDate("2099-06-15"),
		Status:   domain.StatusConfirmed,
	})

	status, body := s.do(t, http.MethodGet, "/api/v1/rooms/1/calendar?from=2099-06-08&to=2099-06-20", "", "")
	require.Equal(t, http.StatusOK, status)

	calendar := data(t, body)
	assert.Equal(t, "2099-06-08", calendar["from"])
	assert.Len(t, calendar["free"], 2)
	booked := calendar["booked"].([]interface{})
	require.Len(t, booked, 1)
	assert.Equal(t, "2099-06-10", booked[0].(map[string]interface{})["checkIn"])
	assert.Equal(t, 5.0, booked[0].(map[string]interface{})["nights"])

	status, _ = s.do(t, http.MethodGet, "/api/v1/rooms/7/calendar", "", "")
	assert.Equal(t, http.StatusNotFound, status)
}
