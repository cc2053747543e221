package get_room_calendar

import (
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// validateRequest проверяет идентификатор комнаты
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomId must be positive", ErrInvalidInput)
	}
	return nil
}

// resolveWindow вычисляет окно календаря; начало в прошлом сдвигается на сегодня
func resolveWindow(from, to, today domain.Date) (domain.Date, domain.Date, error) {
	if from.IsZero() || from.Before(today) {
		from = today
	}
	if to.IsZero() {
		to = from.AddDays(DefaultWindowDays)
	}

	if !from.Before(to) {
		return domain.Date{}, domain.Date{}, ErrInvalidDateRange
	}
	if from.DaysUntil(to) > MaxWindowDays {
		return domain.Date{}, domain.Date{}, fmt.Errorf("%w: at most %d days", ErrRangeTooLong, MaxWindowDays)
	}

	return from, to, nil
}
