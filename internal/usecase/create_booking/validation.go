package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidInput)
	}

	return nil
}

// validateDates проверяет диапазон дат и что заезд не в прошлом
// Порядок проверок важен: сначала диапазон, затем прошлое
func validateDates(checkIn, checkOut domain.Date, now time.Time) error {
	if !checkIn.Before(checkOut) {
		return ErrInvalidDateRange
	}

	if isDateInPast(checkIn, now) {
		return ErrPastCheckIn
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня (по локальному времени сервера)
func isDateInPast(date domain.Date, now time.Time) bool {
	return date.Before(domain.DateOf(now))
}
