package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/internal/infra/lock"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// RoomRepository интерфейс каталога комнат (только чтение)
type RoomRepository interface {
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
}

// AvailabilityChecker проверка пересечений с активными бронированиями
type AvailabilityChecker interface {
	Check(ctx context.Context, roomID int64, checkIn, checkOut domain.Date, excludeID *int64) (bool, error)
}

// RoomLocker блокировка комнаты на время check-then-insert
type RoomLocker interface {
	Lock(ctx context.Context, roomID int64) (lock.Unlock, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикация событий бронирований
type EventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent) error
}

// Metrics счётчики операций с бронированиями
type Metrics interface {
	ObserveBooking(operation, outcome string)
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
