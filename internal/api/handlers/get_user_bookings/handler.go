package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "не удалось определить пользователя"
	msgForbidden     = "доступ запрещён"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings и GET /api/v1/admin/users/{userId}/bookings
// Без userId в пути возвращает бронирования текущего пользователя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	userID := identity.UserID
	if _, scoped := mux.Vars(r)["userId"]; scoped {
		id, err := handlers.PathID(r, "userId")
		if err != nil {
			h.logger.Warn("GET /admin/users/{userId}/bookings - Invalid user ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUserID)
			return
		}
		userID = id
	}

	result, err := h.service.GetUserBookings(r.Context(), identity, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings - Access denied: user_id=%d, target_user_id=%d", identity.UserID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidUserID)

		case errors.Is(err, bookings.ErrStorage):
			h.logger.Error("GET /bookings - Storage unavailable: user_id=%d, error=%v", userID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: user_id=%d, count=%d",
		userID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
