package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBooking/pkg/metrics"
)

// Handlers набор HTTP хендлеров сервиса
type Handlers struct {
	Health             http.HandlerFunc
	CheckAvailability  http.HandlerFunc
	GetRoomCalendar    http.HandlerFunc
	CreateBooking      http.HandlerFunc
	GetUserBookings    http.HandlerFunc
	GetBooking         http.HandlerFunc
	CancelBooking      http.HandlerFunc
	AdminListBookings  http.HandlerFunc
	AdminBookingStats  http.HandlerFunc
	AdminUpdateStatus  http.HandlerFunc
	AdminDeleteBooking http.HandlerFunc
}

// Options общие middleware и эндпоинт метрик
type Options struct {
	Auth           *middleware.Authenticator
	Logger         middleware.Logger
	RequestTimeout time.Duration
	Metrics        *metrics.Metrics // nil - метрики выключены
	MetricsPath    string
}

// NewRouter регистрирует маршруты /api/v1 и служебные эндпоинты
func NewRouter(h Handlers, opts Options) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(opts.Logger))
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		r.Handle(opts.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}
	r.Use(middleware.Timeout(opts.RequestTimeout))

	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/bookings/check-availability", h.CheckAvailability).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{roomId:[0-9]+}/calendar", h.GetRoomCalendar).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <jwt>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(opts.Auth.Auth)

	protected.HandleFunc("/bookings", h.CreateBooking).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", h.GetUserBookings).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", h.GetBooking).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/cancel", h.CancelBooking).Methods(http.MethodPost)

	// --- Администрирование ---
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/bookings", h.AdminListBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/stats", h.AdminBookingStats).Methods(http.MethodGet)
	admin.HandleFunc("/users/{userId:[0-9]+}/bookings", h.GetUserBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}/status", h.AdminUpdateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}", h.AdminDeleteBooking).Methods(http.MethodDelete)

	return r
}
