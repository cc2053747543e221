package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Checker проверяет, свободна ли комната на интервал [checkIn, checkOut)
// Занятой комнату делают только бронирования в статусах pending и confirmed
type Checker struct {
	repo   BookingRepository
	logger Logger
}

func NewChecker(repo BookingRepository, logger Logger) *Checker {
	return &Checker{
		repo:   repo,
		logger: logger,
	}
}

// Check возвращает true, если пересекающихся активных бронирований нет
// excludeID исключает из проверки само бронирование (для реактивации)
func (c *Checker) Check(ctx context.Context, roomID int64, checkIn, checkOut domain.Date, excludeID *int64) (bool, error) {
	count, err := c.repo.CountOverlapping(ctx, roomID, checkIn, checkOut, excludeID)
	if err != nil {
		return false, fmt.Errorf("%w: Check - room=%d %s..%s: %w", ErrStorage, roomID, checkIn, checkOut, err)
	}
	return count == 0, nil
}

// IsAvailable вариант Check без ошибки: при сбое хранилища комната считается занятой
func (c *Checker) IsAvailable(ctx context.Context, roomID int64, checkIn, checkOut domain.Date) bool {
	ok, err := c.Check(ctx, roomID, checkIn, checkOut, nil)
	if err != nil {
		c.logger.Error("IsAvailable: %v", err)
		return false
	}
	return ok
}
