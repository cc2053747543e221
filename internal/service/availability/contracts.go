package availability

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// BookingRepository источник активных бронирований комнаты
type BookingRepository interface {
	CountOverlapping(ctx context.Context, roomID int64, checkIn, checkOut domain.Date, excludeID *int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
