package get_room_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListActiveByRoom получает активные бронирования комнаты, пересекающие [from, to)
	ListActiveByRoom(ctx context.Context, roomID int64, from, to domain.Date) ([]*domain.Booking, error)
}

// RoomRepository интерфейс каталога комнат (только чтение)
type RoomRepository interface {
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
