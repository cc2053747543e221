package check_availability

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// RoomRepository интерфейс каталога комнат (только чтение)
type RoomRepository interface {
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
}

// AvailabilityChecker fail-closed проверка доступности
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, roomID int64, checkIn, checkOut domain.Date) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
