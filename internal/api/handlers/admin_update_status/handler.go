package admin_update_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "не удалось определить пользователя"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "требуются права администратора"
	msgInvalidStatus      = "некорректный статус бронирования, допустимы pending, confirmed, cancelled, completed"
	msgInvalidTransition  = "переход в этот статус запрещён"
	msgNoChange           = "бронирование уже в этом статусе"
	msgRoomUnavailable    = "комната недоступна на выбранные даты"
	msgConcurrentUpdate   = "бронирование изменено параллельно, повторите запрос"
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

// Handle PATCH /api/v1/admin/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.UpdateStatus(r.Context(), identity, bookingID, req.ToServiceRequest())
	if err != nil {
		h.respondError(w, bookingID, err)
		return
	}

	// Возвращаем актуальное состояние бронирования
	booking, err := h.service.GetByID(r.Context(), identity, bookingID)
	if err != nil {
		h.respondError(w, bookingID, err)
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/status - Status updated: booking_id=%d, status=%s, admin_id=%d",
		bookingID, req.Status, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}

func (h *Handler) respondError(w http.ResponseWriter, bookingID int64, err error) {
	switch {
	case errors.Is(err, bookings.ErrBookingNotFound):
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, bookings.ErrAccessDenied):
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, bookings.ErrInvalidStatus):
		handlers.RespondBadRequest(w, msgInvalidStatus)

	case errors.Is(err, bookings.ErrInvalidTransition):
		handlers.RespondConflict(w, msgInvalidTransition)

	case errors.Is(err, bookings.ErrNoChange):
		handlers.RespondConflict(w, msgNoChange)

	case errors.Is(err, bookings.ErrRoomUnavailable):
		handlers.RespondConflict(w, msgRoomUnavailable)

	case errors.Is(err, bookings.ErrConcurrentUpdate):
		handlers.RespondConflict(w, msgConcurrentUpdate)

	case errors.Is(err, bookings.ErrStorage):
		h.logger.Error("PATCH /admin/bookings/{id}/status - Storage unavailable: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondServiceUnavailable(w)

	default:
		h.logger.Error("PATCH /admin/bookings/{id}/status - Failed to update status: booking_id=%d, error=%v",
			bookingID, err)
		handlers.RespondInternalError(w)
	}
}
