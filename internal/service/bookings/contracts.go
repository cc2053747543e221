package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/internal/infra/lock"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64, ownerID *int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus, paymentID *string) error
	Cancel(ctx context.Context, id int64, ownerID *int64) error
	Delete(ctx context.Context, id int64) error
	GetDetails(ctx context.Context, id int64, withUser bool) (*domain.BookingDetails, error)
	ListDetailsByUser(ctx context.Context, userID int64) ([]*domain.BookingDetails, error)
	ListDetails(ctx context.Context) ([]*domain.BookingDetails, error)
	Stats(ctx context.Context) (*domain.BookingStats, error)
}

// AvailabilityChecker проверка пересечений с активными бронированиями
type AvailabilityChecker interface {
	Check(ctx context.Context, roomID int64, checkIn, checkOut domain.Date, excludeID *int64) (bool, error)
}

// RoomLocker блокировка комнаты при реактивации бронирования
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

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
