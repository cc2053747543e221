package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingUserID    = "не удалось определить пользователя"
	msgNotFound         = "бронирование не найдено или доступ запрещён"
	msgAlreadyCancelled = "бронирование уже отменено"
	msgAlreadyCompleted = "нельзя отменить завершённое бронирование"
	msgTooLateToCancel  = "нельзя отменить бронирование в день заезда или позже"
	msgConcurrentUpdate = "бронирование изменено параллельно, повторите запрос"
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

// Handle POST /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.Cancel(r.Context(), identity, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrNotFoundOrDenied):
			h.logger.Warn("POST /bookings/{id}/cancel - Booking not found or denied: booking_id=%d, user_id=%d",
				bookingID, identity.UserID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAlreadyCancelled):
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, bookings.ErrAlreadyCompleted):
			handlers.RespondConflict(w, msgAlreadyCompleted)

		case errors.Is(err, bookings.ErrConcurrentUpdate):
			handlers.RespondConflict(w, msgConcurrentUpdate)

		case errors.Is(err, bookings.ErrTooLateToCancel):
			h.logger.Warn("POST /bookings/{id}/cancel - Too late to cancel: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgTooLateToCancel)

		case errors.Is(err, bookings.ErrStorage):
			h.logger.Error("POST /bookings/{id}/cancel - Storage unavailable: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/cancel - Booking cancelled successfully: booking_id=%d, user_id=%d",
		bookingID, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, CancelBookingResponse{ID: bookingID, Status: string(domain.StatusCancelled)})
}
